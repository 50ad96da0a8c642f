package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

func mustRequestRoleChange(t *testing.T, st *Storage, userID uuid.UUID, role models.Role) *models.RoleChangeRequest {
	t.Helper()

	req := &models.RoleChangeRequest{
		ID:            uuid.New(),
		UserID:        userID,
		RequestedRole: role,
		Status:        models.ApprovalStatusPending,
		RequestedAt:   time.Now().UTC(),
	}
	require.NoError(t, st.CreateRoleChange(context.Background(), req))
	return req
}

// TestIntegration_ApproveRoleChange_DeactivatesAccount — одобрение заявки
// меняет роль, деактивирует учётную запись и сеет pending-профиль новой роли:
// пользователь снова активен только после одобрения этого профиля.
func TestIntegration_ApproveRoleChange_DeactivatesAccount(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	admin := mustRegister(t, st, models.RoleAdmin, true)
	reader := mustRegister(t, st, models.RoleUser, true)

	req := mustRequestRoleChange(t, st, reader.ID, models.RoleAuthor)

	decided, err := st.ApproveRoleChange(ctx, req.ID, admin.ID, &models.Profile{
		UserID:         reader.ID,
		Role:           models.RoleAuthor,
		ApprovalStatus: models.ApprovalStatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusApproved, decided.Status)

	account, err := st.AccountByID(ctx, reader.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleAuthor, account.Role)
	require.False(t, account.IsActive)

	profile, err := st.ProfileByUserID(ctx, reader.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleAuthor, profile.Role)
	require.Equal(t, models.ApprovalStatusPending, profile.ApprovalStatus)

	// Одобрение нового профиля возвращает активность, как при регистрации.
	_, err = st.ApproveProfile(ctx, reader.ID, admin.ID)
	require.NoError(t, err)

	account, err = st.AccountByID(ctx, reader.ID)
	require.NoError(t, err)
	require.True(t, account.IsActive)
}

// TestIntegration_ApproveRoleChange_NonPendingConflict — повторное решение
// по уже решённой заявке отображается в storage.ErrStateConflict.
func TestIntegration_ApproveRoleChange_NonPendingConflict(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	admin := mustRegister(t, st, models.RoleAdmin, true)
	reader := mustRegister(t, st, models.RoleUser, true)

	req := mustRequestRoleChange(t, st, reader.ID, models.RoleAuthor)

	seed := &models.Profile{
		UserID:         reader.ID,
		Role:           models.RoleAuthor,
		ApprovalStatus: models.ApprovalStatusPending,
	}
	_, err := st.ApproveRoleChange(ctx, req.ID, admin.ID, seed)
	require.NoError(t, err)

	_, err = st.ApproveRoleChange(ctx, req.ID, admin.ID, seed)
	require.ErrorIs(t, err, storage.ErrStateConflict)
}

// TestIntegration_CreateRoleChange_SecondPendingConflict — частичный
// уникальный индекс не пускает вторую pending-заявку того же пользователя.
func TestIntegration_CreateRoleChange_SecondPendingConflict(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	reader := mustRegister(t, st, models.RoleUser, true)
	mustRequestRoleChange(t, st, reader.ID, models.RoleAuthor)

	err := st.CreateRoleChange(context.Background(), &models.RoleChangeRequest{
		ID:            uuid.New(),
		UserID:        reader.ID,
		RequestedRole: models.RoleEditor,
		Status:        models.ApprovalStatusPending,
		RequestedAt:   time.Now().UTC(),
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}
