package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// Accounts выполняет операции над учётными записями.
type Accounts interface {
	// AccountByEmail находит учётную запись по email.
	AccountByEmail(ctx context.Context, email string) (*models.Account, error)
	// AccountByUsername находит учётную запись по username.
	AccountByUsername(ctx context.Context, username string) (*models.Account, error)
	// AccountByID находит учётную запись по ID.
	AccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// MarkVerified помечает email учётной записи как подтверждённый.
	MarkVerified(ctx context.Context, id uuid.UUID) error
	// UpdatePassword заменяет хэш пароля учётной записи.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
