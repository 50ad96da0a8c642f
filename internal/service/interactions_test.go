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

func TestToggleInteraction_Like(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}
	articleID := uuid.New()

	st.EXPECT().ArticleByID(gomock.Any(), articleID).
		Return(&models.Article{ID: articleID, Status: models.ArticleStatusApproved}, nil)
	st.EXPECT().ToggleInteraction(gomock.Any(), articleID, ident.UserID, models.InteractionLike).
		Return(&models.Interaction{ArticleID: articleID, UserID: ident.UserID, Liked: true}, nil)
	st.EXPECT().InteractionCounts(gomock.Any(), articleID).Return(int64(11), int64(3), nil)

	result, err := svc.ToggleInteraction(context.Background(), ident, articleID, models.InteractionLike)
	require.NoError(t, err)
	require.True(t, result.Interaction.Liked)
	require.False(t, result.Interaction.Disliked)
	require.Equal(t, int64(11), result.Likes)
	require.Equal(t, int64(3), result.Dislikes)
}

func TestToggleInteraction_UnpublishedArticle(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}
	articleID := uuid.New()

	st.EXPECT().ArticleByID(gomock.Any(), articleID).
		Return(&models.Article{ID: articleID, Status: models.ArticleStatusDraft}, nil)

	_, err := svc.ToggleInteraction(context.Background(), ident, articleID, models.InteractionLike)
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestToggleInteraction_UnknownArticle(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}
	articleID := uuid.New()

	st.EXPECT().ArticleByID(gomock.Any(), articleID).Return(nil, storage.ErrNotFound)

	_, err := svc.ToggleInteraction(context.Background(), ident, articleID, models.InteractionDislike)
	require.ErrorIs(t, err, ErrNotFound)
}
