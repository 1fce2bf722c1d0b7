package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/pribylovaa/url-shortener/internal/models"
)

const (
	minLoginLength    = "5"
	maxLoginLength    = "50"
	minPasswordLength = 8
	maxPasswordLength = 100
	reservedLogin     = "anonymousUser"
)

var (
	emailRe   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z0-9]{2,}$`)
	longURLRe = regexp.MustCompile(`^(http://|https://).+`)
)

// Валидаторы возвращают "" для корректного значения или фрагмент сообщения.
// Фрагменты разных полей складываются вызывающей стороной.

// validateLogin проверяет логин: непустой, не зарезервирован, 5–50 символов [a-zA-Z0-9].
func validateLogin(login string) string {
	if login == "" {
		return msgLoginEmpty
	}

	if strings.EqualFold(login, reservedLogin) {
		return msgLoginForbidden
	}

	if !govalidator.IsAlphanumeric(login) || !govalidator.StringLength(login, minLoginLength, maxLoginLength) {
		return msgLoginFormat
	}

	return ""
}

// validateEmail проверяет форму local@domain.tld.
func validateEmail(email string) string {
	if email == "" {
		return msgEmailEmpty
	}

	if !emailRe.MatchString(email) {
		return msgEmailIncorrect
	}

	return ""
}

// validatePassword проверяет пароль: непустой, не длиннее 100 символов,
// не короче 8 и содержит строчную, заглавную латинскую букву и цифру.
func validatePassword(pw string) string {
	if pw == "" {
		return msgPasswordEmpty
	}

	n := utf8.RuneCountInString(pw)
	if n > maxPasswordLength {
		return msgPasswordLimit
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if n < minPasswordLength || !(hasLower && hasUpper && hasDigit) {
		return msgPasswordFormat
	}

	return ""
}

// validateLongURL проверяет, что URL непустой и начинается с http:// или https://.
func validateLongURL(url string) string {
	if !longURLRe.MatchString(url) {
		return msgURLIncorrect
	}

	return ""
}

// validateIdentifier проверяет идентификатор по правилам его типа.
func validateIdentifier(identifier string) string {
	switch models.ClassifyIdentifier(identifier) {
	case models.IdentifierLogin:
		return validateLogin(identifier)
	case models.IdentifierEmail:
		return validateEmail(identifier)
	case models.IdentifierEmpty:
		return msgIdentifierEmpty
	}

	return msgIdentifierEmpty
}

// validateRegistration агрегирует ошибки всех полей регистрации.
func validateRegistration(login, email, password string) error {
	msg := validateLogin(login) + validateEmail(email) + validatePassword(password)
	if msg != "" {
		return NewValidationError(msg)
	}

	return nil
}

// validateCredentials агрегирует ошибки идентификатора и пароля.
func validateCredentials(identifier, password string) error {
	msg := validateIdentifier(identifier) + validatePassword(password)
	if msg != "" {
		return NewValidationError(msg)
	}

	return nil
}
