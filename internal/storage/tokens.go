package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// RefreshTokens выполняет операции над refresh-токенами.
type RefreshTokens interface {
	// SaveRefreshToken сохраняет новый refresh-token в БД.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// RefreshTokenByHash находит refresh-токен по его хэшу.
	RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// RevokeRefreshToken пытается отозвать refresh-токен.
	RevokeRefreshToken(ctx context.Context, hash string) (bool, error)
	// DeleteExpiredTokens удаляет все просроченные токены.
	DeleteExpiredTokens(ctx context.Context, now time.Time) error
}

// VerificationTokens выполняет операции над токенами подтверждения email.
type VerificationTokens interface {
	// SaveVerificationToken сохраняет новый токен подтверждения.
	SaveVerificationToken(ctx context.Context, token *models.EmailVerificationToken) error
	// ConsumeVerificationToken помечает токен использованным и возвращает его.
	// Уже использованный токен — ErrRevoked.
	ConsumeVerificationToken(ctx context.Context, token uuid.UUID) (*models.EmailVerificationToken, error)
}

// ResetTokens выполняет операции над токенами сброса пароля.
type ResetTokens interface {
	// SaveResetToken сохраняет новый токен сброса пароля.
	SaveResetToken(ctx context.Context, token *models.PasswordResetToken) error
	// ConsumeResetToken помечает токен использованным и возвращает его.
	// Просроченный токен — ErrExpired, использованный — ErrRevoked.
	ConsumeResetToken(ctx context.Context, token uuid.UUID, now time.Time) (*models.PasswordResetToken, error)
}
