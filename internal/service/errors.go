package service

import (
	"errors"
	"fmt"
)

// Классы ошибок сервиса. Конкретная ошибка — *Error с человекочитаемым
// сообщением; её класс проверяется через errors.Is.
var (
	// ErrValidation — некорректный ввод, истёкшая ссылка, срок в прошлом.
	// Транспорт: HTTP 400.
	ErrValidation = errors.New("validation error")

	// ErrConflict — логин или e-mail уже зарегистрированы.
	// Транспорт: HTTP 409.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized — нет/неверная аутентификация, неверные учётные данные.
	// Транспорт: HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound — ресурс не найден или принадлежит другому пользователю.
	// Владение намеренно не выделяется в отдельный класс. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrCodeSpaceExhausted — исчерпаны попытки подобрать свободный короткий код.
	// Транспорт: HTTP 500.
	ErrCodeSpaceExhausted = errors.New("short code generation attempts exceeded")
)

// Error — ошибка сервиса с фиксированным классом и сообщением для клиента.
// Сообщения валидации могут содержать несколько фрагментов подряд.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewValidationError создаёт ошибку класса ErrValidation.
func NewValidationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func conflictError(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func unauthorizedError(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

func notFoundError(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Сообщения для клиента.
const (
	msgLoginEmpty      = "Login cannot be empty. "
	msgLoginFormat     = "Login must be at least 5 and no more than 50 characters and may contain only uppercase and lowercase letters and numbers. "
	msgLoginForbidden  = "It is forbidden to use this login. "
	msgEmailEmpty      = "Email cannot be empty. "
	msgEmailIncorrect  = "Email is incorrect. "
	msgIdentifierEmpty = "Authentication identifier cannot be empty. You must enter your login or email. "
	msgPasswordEmpty   = "Password cannot be empty. "
	msgPasswordLimit   = "Password size limit exceeded. "
	msgPasswordFormat  = "Password must be at least 8 characters long, including digits, uppercase, and lowercase letters. "
	msgBadCredentials  = "Wrong login, email or password. "
	msgUnauthorized    = "User is not authenticated. "
	msgURLIncorrect    = "Url is incorrect. "
	msgURLNotFound     = "URL not found. "
	msgTokenIncorrect  = "JWT token is incorrect. "
	msgURLExpired      = "URL has expired."
	msgPastExpiration  = "You cannot set the expiration date to a past date. "
)

func msgLoginExists(login string) string {
	return "User with login " + login + " already exists. "
}

func msgEmailExists(email string) string {
	return "User with email " + email + " already exists. "
}

func msgLoginNotFound(login string) string {
	return "User with login " + login + " not found. "
}

func msgEmailNotFound(email string) string {
	return "User with email " + email + " not found. "
}
