// redact предоставляет утилиты безопасного редактирования чувствительных
// данных для логов (e-mail, логины, токены, пароли).
package redact

import "strings"

// Email маскирует e-mail для логирования: первые две руны локальной части
// сохраняются, остальное заменяется на "***"; домен не меняется.
// Строка без ровно одного '@' редактируется полностью.
//
//	"foobar@example.com" -> "fo***@example.com"
//	"ab@ex.com"          -> "***@ex.com"
func Email(s string) string {
	if strings.Count(s, "@") != 1 {
		return "***"
	}

	i := strings.IndexByte(s, '@')
	return keepTwo(s[:i]) + "@" + s[i+1:]
}

// Identifier маскирует идентификатор входа: e-mail — как Email, логин — как локальную часть.
func Identifier(s string) string {
	if strings.Contains(s, "@") {
		return Email(s)
	}

	return keepTwo(s)
}

// Token возвращает литерал-заглушку для токена в логах.
func Token() string { return "[REDACTED_TOKEN]" }

// Password возвращает литерал-заглушку для пароля в логах.
func Password() string { return "[REDACTED_PASSWORD]" }

func keepTwo(s string) string {
	r := []rune(s)
	if len(r) > 2 {
		return string(r[:2]) + "***"
	}

	return "***"
}
