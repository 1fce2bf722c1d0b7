package models

// Role — роль пользователя. В системе используется единственная роль USER.
type Role string

// RoleUser — роль по умолчанию, назначаемая при регистрации.
const RoleUser Role = "USER"

// User - модель пользователя в системе.
type User struct {
	ID           int64
	Login        string
	Email        string
	PasswordHash string
	Role         Role
}
