package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// Interactions выполняет операции над реакциями на статьи.
type Interactions interface {
	// ToggleInteraction атомарно переключает реакцию пользователя:
	// повторное действие снимает флаг, противоположный флаг всегда сбрасывается.
	ToggleInteraction(ctx context.Context, articleID, userID uuid.UUID, action models.InteractionAction) (*models.Interaction, error)
	// InteractionFor возвращает реакцию пользователя на статью.
	InteractionFor(ctx context.Context, articleID, userID uuid.UUID) (*models.Interaction, error)
	// InteractionCounts возвращает счётчики лайков и дизлайков статьи.
	InteractionCounts(ctx context.Context, articleID uuid.UUID) (likes, dislikes int64, err error)
}
