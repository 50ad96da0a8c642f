package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// accountColumns — единый список колонок таблицы accounts,
// используемый в SELECT/RETURNING для одинакового порядка сканирования.
const accountColumns = `
id, username, email, role, password_hash, is_active, is_verified, created_at, updated_at
`

// scanAccount сканирует одну строку учётной записи в доменную модель.
func scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	var role string

	if err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&role,
		&account.PasswordHash,
		&account.IsActive,
		&account.IsVerified,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	account.Role = models.Role(role)
	account.CreatedAt = account.CreatedAt.UTC()
	account.UpdatedAt = account.UpdatedAt.UTC()

	return &account, nil
}

// AccountByEmail находит учётную запись по email.
func (s *Storage) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage/postgres/accounts/AccountByEmail"

	q := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(s.db.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// AccountByUsername находит учётную запись по username.
func (s *Storage) AccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	const op = "storage/postgres/accounts/AccountByUsername"

	q := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`

	account, err := scanAccount(s.db.QueryRow(ctx, q, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// AccountByID находит учётную запись по ID.
func (s *Storage) AccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	const op = "storage/postgres/accounts/AccountByID"

	q := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// MarkVerified помечает email учётной записи как подтверждённый.
func (s *Storage) MarkVerified(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/accounts/MarkVerified"

	q := `
	UPDATE accounts
	SET is_verified = TRUE, updated_at = now()
	WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UpdatePassword заменяет хэш пароля учётной записи.
func (s *Storage) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const op = "storage/postgres/accounts/UpdatePassword"

	q := `
	UPDATE accounts
	SET password_hash = $2, updated_at = now()
	WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, q, id, passwordHash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
