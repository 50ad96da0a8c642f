// postgres реализует контракты storage поверх PostgreSQL (pgx/v5).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RajivKhattri/newsportal/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создает новое подключение к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// Проверки на соответствие контрактам storage.
var (
	_ storage.Accounts           = (*Storage)(nil)
	_ storage.Profiles           = (*Storage)(nil)
	_ storage.RoleChanges        = (*Storage)(nil)
	_ storage.Articles           = (*Storage)(nil)
	_ storage.Interactions       = (*Storage)(nil)
	_ storage.News               = (*Storage)(nil)
	_ storage.RefreshTokens      = (*Storage)(nil)
	_ storage.VerificationTokens = (*Storage)(nil)
	_ storage.ResetTokens        = (*Storage)(nil)
)
