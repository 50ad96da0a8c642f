package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// SaveRefreshToken сохраняет новый refresh-token в БД.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	const op = "storage/postgres/tokens/SaveRefreshToken"

	q := `
	INSERT INTO refresh_tokens (token_hash, user_id, created_at, expires_at, revoked)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, q,
		token.RefreshTokenHash,
		token.UserID,
		token.CreatedAt.UTC(),
		token.ExpiresAt.UTC(),
		token.Revoked,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RefreshTokenByHash находит refresh-токен по его хэшу.
func (s *Storage) RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	const op = "storage/postgres/tokens/RefreshTokenByHash"

	q := `
	SELECT token_hash, user_id, created_at, expires_at, revoked
	FROM refresh_tokens
	WHERE token_hash = $1
	`

	var token models.RefreshToken
	err := s.db.QueryRow(ctx, q, hash).Scan(
		&token.RefreshTokenHash,
		&token.UserID,
		&token.CreatedAt,
		&token.ExpiresAt,
		&token.Revoked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token.CreatedAt = token.CreatedAt.UTC()
	token.ExpiresAt = token.ExpiresAt.UTC()

	return &token, nil
}

// RevokeRefreshToken пытается отозвать refresh-токен.
// Возвращает true, если токен был активен и отозван этим вызовом.
func (s *Storage) RevokeRefreshToken(ctx context.Context, hash string) (bool, error) {
	const op = "storage/postgres/tokens/RevokeRefreshToken"

	q := `
	UPDATE refresh_tokens
	SET revoked = TRUE
	WHERE token_hash = $1 AND revoked = FALSE
	`

	tag, err := s.db.Exec(ctx, q, hash)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteExpiredTokens удаляет все просроченные refresh-токены.
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) error {
	const op = "storage/postgres/tokens/DeleteExpiredTokens"

	if _, err := s.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, now.UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SaveVerificationToken сохраняет новый токен подтверждения email.
func (s *Storage) SaveVerificationToken(ctx context.Context, token *models.EmailVerificationToken) error {
	const op = "storage/postgres/tokens/SaveVerificationToken"

	q := `
	INSERT INTO email_verification_tokens (token, user_id, created_at)
	VALUES ($1, $2, $3)
	`

	if _, err := s.db.Exec(ctx, q, token.Token, token.UserID, token.CreatedAt.UTC()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeVerificationToken помечает токен подтверждения использованным.
// Уже использованный токен — storage.ErrRevoked.
func (s *Storage) ConsumeVerificationToken(ctx context.Context, token uuid.UUID) (*models.EmailVerificationToken, error) {
	const op = "storage/postgres/tokens/ConsumeVerificationToken"

	q := `
	UPDATE email_verification_tokens
	SET used_at = now()
	WHERE token = $1 AND used_at IS NULL
	RETURNING token, user_id, created_at, used_at
	`

	var result models.EmailVerificationToken
	err := s.db.QueryRow(ctx, q, token).Scan(
		&result.Token,
		&result.UserID,
		&result.CreatedAt,
		&result.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if exErr := s.db.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM email_verification_tokens WHERE token = $1)`,
				token,
			).Scan(&exists); exErr != nil {
				return nil, fmt.Errorf("%s: %w", op, exErr)
			}

			if exists {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrRevoked)
			}

			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result.CreatedAt = result.CreatedAt.UTC()

	return &result, nil
}

// SaveResetToken сохраняет новый токен сброса пароля.
func (s *Storage) SaveResetToken(ctx context.Context, token *models.PasswordResetToken) error {
	const op = "storage/postgres/tokens/SaveResetToken"

	q := `
	INSERT INTO password_reset_tokens (token, user_id, created_at, expires_at)
	VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.Exec(ctx, q, token.Token, token.UserID, token.CreatedAt.UTC(), token.ExpiresAt.UTC()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeResetToken помечает токен сброса использованным.
// Просроченный токен — storage.ErrExpired, использованный — storage.ErrRevoked.
func (s *Storage) ConsumeResetToken(ctx context.Context, token uuid.UUID, now time.Time) (*models.PasswordResetToken, error) {
	const op = "storage/postgres/tokens/ConsumeResetToken"

	q := `
	UPDATE password_reset_tokens
	SET used_at = now()
	WHERE token = $1 AND used_at IS NULL AND expires_at > $2
	RETURNING token, user_id, created_at, expires_at, used_at
	`

	var result models.PasswordResetToken
	err := s.db.QueryRow(ctx, q, token, now.UTC()).Scan(
		&result.Token,
		&result.UserID,
		&result.CreatedAt,
		&result.ExpiresAt,
		&result.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var usedAt *time.Time
			var expiresAt time.Time
			exErr := s.db.QueryRow(ctx,
				`SELECT used_at, expires_at FROM password_reset_tokens WHERE token = $1`,
				token,
			).Scan(&usedAt, &expiresAt)
			if exErr != nil {
				if errors.Is(exErr, pgx.ErrNoRows) {
					return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
				}

				return nil, fmt.Errorf("%s: %w", op, exErr)
			}

			if usedAt != nil {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrRevoked)
			}

			return nil, fmt.Errorf("%s: %w", op, storage.ErrExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result.CreatedAt = result.CreatedAt.UTC()
	result.ExpiresAt = result.ExpiresAt.UTC()

	return &result, nil
}
