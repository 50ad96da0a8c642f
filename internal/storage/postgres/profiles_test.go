package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// TestIntegration_CreateAccountWithProfile_And_Lookups — happy-path регистрации:
// учётная запись и профиль создаются атомарно, после чего находятся по email
// (регистронезависимо, CITEXT), username и ID.
func TestIntegration_CreateAccountWithProfile_And_Lookups(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	account := mustRegister(t, st, models.RoleAuthor, false)

	byEmail, err := st.AccountByEmail(ctx, strings.ToUpper(account.Email))
	require.NoError(t, err)
	require.Equal(t, account.ID, byEmail.ID)
	require.Equal(t, models.RoleAuthor, byEmail.Role)
	require.False(t, byEmail.IsActive)

	byUsername, err := st.AccountByUsername(ctx, account.Username)
	require.NoError(t, err)
	require.Equal(t, account.ID, byUsername.ID)

	profile, err := st.ProfileByUserID(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusPending, profile.ApprovalStatus)
}

// TestIntegration_CreateAccountWithProfile_DuplicateEmail — конфликт уникальности
// отображается в storage.ErrAlreadyExists, запись-дубликат не появляется.
func TestIntegration_CreateAccountWithProfile_DuplicateEmail(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	account := mustRegister(t, st, models.RoleUser, true)

	dup := &models.Account{
		ID:           uuid.New(),
		Username:     "other-" + account.Username,
		Email:        strings.ToUpper(account.Email),
		Role:         models.RoleUser,
		PasswordHash: "hash",
	}
	err := st.CreateAccountWithProfile(ctx, dup, &models.Profile{
		UserID:         dup.ID,
		Role:           models.RoleUser,
		ApprovalStatus: models.ApprovalStatusApproved,
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	// Транзакция откатилась: учётной записи-дубликата нет.
	_, err = st.AccountByID(ctx, dup.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_ApproveProfile_ActivatesAccount — одобрение профиля
// активирует учётную запись и фиксирует approved_by.
func TestIntegration_ApproveProfile_ActivatesAccount(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	admin := mustRegister(t, st, models.RoleAdmin, true)
	author := mustRegister(t, st, models.RoleAuthor, false)

	profile, err := st.ApproveProfile(ctx, author.ID, admin.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusApproved, profile.ApprovalStatus)
	require.True(t, profile.ApprovedBy.Valid)
	require.Equal(t, admin.ID, profile.ApprovedBy.UUID)

	account, err := st.AccountByID(ctx, author.ID)
	require.NoError(t, err)
	require.True(t, account.IsActive)
}

// TestIntegration_RejectProfile_DeactivatesAccount — отклонение сохраняет
// комментарий и держит учётную запись неактивной.
func TestIntegration_RejectProfile_DeactivatesAccount(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	admin := mustRegister(t, st, models.RoleAdmin, true)
	editor := mustRegister(t, st, models.RoleEditor, false)

	profile, err := st.RejectProfile(ctx, editor.ID, admin.ID, "no oversight areas")
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusRejected, profile.ApprovalStatus)
	require.Equal(t, "no oversight areas", profile.ApprovalComment)

	account, err := st.AccountByID(ctx, editor.ID)
	require.NoError(t, err)
	require.False(t, account.IsActive)
}

// TestIntegration_ListPendingProfiles_Pagination — очередь модерации
// возвращается страницами в порядке подачи.
func TestIntegration_ListPendingProfiles_Pagination(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		mustRegister(t, st, models.RoleAuthor, false)
	}

	first, next, err := st.ListPendingProfiles(ctx, models.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.NotEmpty(t, next)

	rest, next, err := st.ListPendingProfiles(ctx, models.ListOptions{Limit: 2, PageToken: next})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.NotEmpty(t, next)

	empty, last, err := st.ListPendingProfiles(ctx, models.ListOptions{Limit: 2, PageToken: next})
	require.NoError(t, err)
	require.Empty(t, empty)
	require.Empty(t, last)
}
