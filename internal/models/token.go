package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair — пара access+refresh токенов, выдаваемая после логина.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// RefreshToken — серверная запись refresh-токена.
// В БД хранится только хэш, plaintext отдаётся клиенту один раз.
type RefreshToken struct {
	RefreshTokenHash string
	UserID           uuid.UUID
	CreatedAt        time.Time
	ExpiresAt        time.Time
	Revoked          bool
}

// EmailVerificationToken — одноразовый токен подтверждения e-mail.
type EmailVerificationToken struct {
	Token     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UsedAt    *time.Time
}

// PasswordResetToken — одноразовый токен сброса пароля с явным сроком жизни.
type PasswordResetToken struct {
	Token     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
}

// Expired сообщает, истёк ли срок действия токена на момент now.
func (t PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
