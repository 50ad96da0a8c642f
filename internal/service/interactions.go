package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// InteractionResult — состояние реакции после переключения плюс счётчики статьи.
type InteractionResult struct {
	Interaction models.Interaction
	Likes       int64
	Dislikes    int64
}

// ToggleInteraction переключает реакцию пользователя на опубликованную статью.
// Повторное действие снимает реакцию, противоположная реакция сбрасывается.
func (s *Service) ToggleInteraction(ctx context.Context, ident *Identity, articleID uuid.UUID, action models.InteractionAction) (*InteractionResult, error) {
	const op = "service/interactions/ToggleInteraction"

	article, err := s.storage.ArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Реакции принимаются только на опубликованные статьи.
	if article.Status != models.ArticleStatusApproved {
		return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
	}

	interaction, err := s.storage.ToggleInteraction(ctx, articleID, ident.UserID, action)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	likes, dislikes, err := s.storage.InteractionCounts(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Debug("interaction_toggled",
		slog.String("op", op),
		slog.String("article_id", articleID.String()),
		slog.String("user_id", ident.UserID.String()),
		slog.String("action", string(action)),
		slog.Bool("liked", interaction.Liked),
		slog.Bool("disliked", interaction.Disliked),
	)

	return &InteractionResult{
		Interaction: *interaction,
		Likes:       likes,
		Dislikes:    dislikes,
	}, nil
}
