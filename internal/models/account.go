// models содержит доменные сущности портала.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль учётной записи.
type Role string

const (
	RoleUser   Role = "user"
	RoleAuthor Role = "author"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// ParseRole возвращает роль по строковому значению.
// Неизвестное значение -> ("", false).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAuthor, RoleEditor, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Privileged сообщает, требует ли роль одобрения профиля перед активацией.
func (r Role) Privileged() bool {
	return r == RoleAuthor || r == RoleEditor || r == RoleAdmin
}

// Account — внутренняя доменная модель учётной записи.
//
// Инварианты:
//   - username/email уникальны;
//   - аккаунт с привилегированной ролью неактивен (IsActive=false),
//     пока профиль не одобрен оператором.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Role         Role
	PasswordHash string
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
