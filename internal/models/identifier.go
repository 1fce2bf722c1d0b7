package models

import "strings"

// IdentifierKind — тип идентификатора, которым пользователь входит в систему.
type IdentifierKind int

const (
	// IdentifierEmpty — идентификатор не передан.
	IdentifierEmpty IdentifierKind = iota
	// IdentifierLogin — идентификатор трактуется как логин.
	IdentifierLogin
	// IdentifierEmail — идентификатор содержит '@' и трактуется как e-mail.
	IdentifierEmail
)

// String возвращает имя типа для логов.
func (k IdentifierKind) String() string {
	switch k {
	case IdentifierLogin:
		return "login"
	case IdentifierEmail:
		return "email"
	default:
		return "empty"
	}
}

// ClassifyIdentifier определяет тип идентификатора: пустая строка — Empty,
// строка с '@' — Email, всё остальное — Login.
func ClassifyIdentifier(identifier string) IdentifierKind {
	switch {
	case identifier == "":
		return IdentifierEmpty
	case strings.Contains(identifier, "@"):
		return IdentifierEmail
	default:
		return IdentifierLogin
	}
}
