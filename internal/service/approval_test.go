package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

func TestProfileByUser_OwnProfile(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}

	st.EXPECT().ProfileByUserID(gomock.Any(), ident.UserID).
		Return(&models.Profile{UserID: ident.UserID, Role: models.RoleUser}, nil)

	profile, err := svc.ProfileByUser(context.Background(), ident, ident.UserID)
	require.NoError(t, err)
	require.Equal(t, ident.UserID, profile.UserID)
}

func TestProfileByUser_StrangerForbidden(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}

	_, err := svc.ProfileByUser(context.Background(), ident, uuid.New())
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestProfileByUser_AdminSeesAny(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	target := uuid.New()
	st.EXPECT().ProfileByUserID(gomock.Any(), target).
		Return(&models.Profile{UserID: target, Role: models.RoleAuthor}, nil)

	_, err := svc.ProfileByUser(context.Background(), adminIdent(), target)
	require.NoError(t, err)
}

func TestPendingProfiles_EditorWithUserManagement(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := editorIdent()

	st.EXPECT().ProfileByUserID(gomock.Any(), ident.UserID).
		Return(approvedEditorProfile(ident.UserID, models.ResponsibilityUserManagement), nil)
	st.EXPECT().ListPendingProfiles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts models.ListOptions) ([]models.Profile, string, error) {
			require.Equal(t, int32(20), opts.Limit)
			return []models.Profile{{UserID: uuid.New()}}, "", nil
		})

	items, _, err := svc.PendingProfiles(context.Background(), ident, models.ListOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestPendingProfiles_AuthorForbidden(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.PendingProfiles(context.Background(), authorIdent(), models.ListOptions{})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestApproveProfile_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := adminIdent()
	target := uuid.New()

	st.EXPECT().ProfileByUserID(gomock.Any(), target).
		Return(&models.Profile{
			UserID:         target,
			Role:           models.RoleAuthor,
			ApprovalStatus: models.ApprovalStatusPending,
		}, nil)
	st.EXPECT().ApproveProfile(gomock.Any(), target, ident.UserID).
		Return(&models.Profile{
			UserID:         target,
			ApprovalStatus: models.ApprovalStatusApproved,
			ApprovedBy:     uuid.NullUUID{UUID: ident.UserID, Valid: true},
		}, nil)

	profile, err := svc.ApproveProfile(context.Background(), ident, target)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusApproved, profile.ApprovalStatus)
}

func TestApproveProfile_AdminWithoutDocumentBlocked(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := adminIdent()
	target := uuid.New()

	st.EXPECT().ProfileByUserID(gomock.Any(), target).
		Return(&models.Profile{
			UserID:         target,
			Role:           models.RoleAdmin,
			ApprovalStatus: models.ApprovalStatusPending,
		}, nil)

	_, err := svc.ApproveProfile(context.Background(), ident, target)
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestApproveProfile_AdminWithDocumentApproved(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := adminIdent()
	target := uuid.New()

	st.EXPECT().ProfileByUserID(gomock.Any(), target).
		Return(&models.Profile{
			UserID:         target,
			Role:           models.RoleAdmin,
			DocumentKey:    "approval-document/" + target.String() + "/doc.pdf",
			ApprovalStatus: models.ApprovalStatusPending,
		}, nil)
	st.EXPECT().ApproveProfile(gomock.Any(), target, ident.UserID).
		Return(&models.Profile{
			UserID:         target,
			Role:           models.RoleAdmin,
			ApprovalStatus: models.ApprovalStatusApproved,
		}, nil)

	_, err := svc.ApproveProfile(context.Background(), ident, target)
	require.NoError(t, err)
}

func TestRejectProfile_RequiresComment(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.RejectProfile(context.Background(), adminIdent(), uuid.New(), "  ")
	fields := fieldsOf(t, err)
	require.Contains(t, fields, "comment")
}

func TestRejectProfile_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := adminIdent()
	target := uuid.New()

	st.EXPECT().RejectProfile(gomock.Any(), target, ident.UserID, "certificate unreadable").
		Return(&models.Profile{
			UserID:          target,
			ApprovalStatus:  models.ApprovalStatusRejected,
			ApprovalComment: "certificate unreadable",
		}, nil)

	profile, err := svc.RejectProfile(context.Background(), ident, target, " certificate unreadable ")
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusRejected, profile.ApprovalStatus)
}

func TestRequestRoleChange_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}

	st.EXPECT().AccountByID(gomock.Any(), ident.UserID).
		Return(&models.Account{ID: ident.UserID, Role: models.RoleUser}, nil)
	st.EXPECT().CreateRoleChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.RoleChangeRequest) error {
			require.Equal(t, ident.UserID, req.UserID)
			require.Equal(t, models.RoleAuthor, req.RequestedRole)
			require.Equal(t, models.ApprovalStatusPending, req.Status)
			return nil
		})

	req, err := svc.RequestRoleChange(context.Background(), ident, models.RoleAuthor)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusPending, req.Status)
}

func TestRequestRoleChange_ReaderRoleRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleAuthor}

	_, err := svc.RequestRoleChange(context.Background(), ident, models.RoleUser)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRequestRoleChange_SameRoleConflict(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleAuthor}

	st.EXPECT().AccountByID(gomock.Any(), ident.UserID).
		Return(&models.Account{ID: ident.UserID, Role: models.RoleAuthor}, nil)

	_, err := svc.RequestRoleChange(context.Background(), ident, models.RoleAuthor)
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestRequestRoleChange_DuplicatePendingConflict(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}

	st.EXPECT().AccountByID(gomock.Any(), ident.UserID).
		Return(&models.Account{ID: ident.UserID, Role: models.RoleUser}, nil)
	st.EXPECT().CreateRoleChange(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists)

	_, err := svc.RequestRoleChange(context.Background(), ident, models.RoleAuthor)
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestApproveRoleChange_SeedsPendingProfile(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := adminIdent()
	id := uuid.New()
	userID := uuid.New()

	st.EXPECT().RoleChangeByID(gomock.Any(), id).Return(&models.RoleChangeRequest{
		ID:            id,
		UserID:        userID,
		RequestedRole: models.RoleEditor,
		Status:        models.ApprovalStatusPending,
	}, nil)
	st.EXPECT().ApproveRoleChange(gomock.Any(), id, ident.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, seed *models.Profile) (*models.RoleChangeRequest, error) {
			require.Equal(t, userID, seed.UserID)
			require.Equal(t, models.RoleEditor, seed.Role)
			require.Equal(t, models.ApprovalStatusPending, seed.ApprovalStatus)
			return &models.RoleChangeRequest{
				ID:            id,
				UserID:        userID,
				RequestedRole: models.RoleEditor,
				Status:        models.ApprovalStatusApproved,
			}, nil
		})

	decided, err := svc.ApproveRoleChange(context.Background(), ident, id)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusApproved, decided.Status)
}

func TestApproveRoleChange_AlreadyDecided(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := adminIdent()
	id := uuid.New()

	st.EXPECT().RoleChangeByID(gomock.Any(), id).Return(&models.RoleChangeRequest{
		ID:     id,
		UserID: uuid.New(),
		Status: models.ApprovalStatusApproved,
	}, nil)
	st.EXPECT().ApproveRoleChange(gomock.Any(), id, ident.UserID, gomock.Any()).
		Return(nil, storage.ErrStateConflict)

	_, err := svc.ApproveRoleChange(context.Background(), ident, id)
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestRejectRoleChange_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := adminIdent()
	id := uuid.New()

	st.EXPECT().RejectRoleChange(gomock.Any(), id, ident.UserID, "insufficient experience").
		Return(&models.RoleChangeRequest{ID: id, Status: models.ApprovalStatusRejected}, nil)

	decided, err := svc.RejectRoleChange(context.Background(), ident, id, "insufficient experience")
	require.NoError(t, err)
	require.Equal(t, models.ApprovalStatusRejected, decided.Status)
}
