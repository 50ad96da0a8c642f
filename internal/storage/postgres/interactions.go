package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// ToggleInteraction атомарно переключает реакцию пользователя одним upsert:
// повторное действие снимает флаг, противоположный флаг всегда сбрасывается.
func (s *Storage) ToggleInteraction(ctx context.Context, articleID, userID uuid.UUID, action models.InteractionAction) (*models.Interaction, error) {
	const op = "storage/postgres/interactions/ToggleInteraction"

	var q string
	switch action {
	case models.InteractionLike:
		q = `
		INSERT INTO interactions (article_id, user_id, liked, disliked, updated_at)
		VALUES ($1, $2, TRUE, FALSE, now())
		ON CONFLICT (article_id, user_id) DO UPDATE
		SET liked = NOT interactions.liked,
			disliked = FALSE,
			updated_at = now()
		RETURNING article_id, user_id, liked, disliked, updated_at
		`
	case models.InteractionDislike:
		q = `
		INSERT INTO interactions (article_id, user_id, liked, disliked, updated_at)
		VALUES ($1, $2, FALSE, TRUE, now())
		ON CONFLICT (article_id, user_id) DO UPDATE
		SET disliked = NOT interactions.disliked,
			liked = FALSE,
			updated_at = now()
		RETURNING article_id, user_id, liked, disliked, updated_at
		`
	default:
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	var res models.Interaction
	err := s.db.QueryRow(ctx, q, articleID, userID).Scan(
		&res.ArticleID,
		&res.UserID,
		&res.Liked,
		&res.Disliked,
		&res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res.UpdatedAt = res.UpdatedAt.UTC()

	return &res, nil
}

// InteractionFor возвращает реакцию пользователя на статью.
func (s *Storage) InteractionFor(ctx context.Context, articleID, userID uuid.UUID) (*models.Interaction, error) {
	const op = "storage/postgres/interactions/InteractionFor"

	q := `
	SELECT article_id, user_id, liked, disliked, updated_at
	FROM interactions
	WHERE article_id = $1 AND user_id = $2
	`

	var res models.Interaction
	err := s.db.QueryRow(ctx, q, articleID, userID).Scan(
		&res.ArticleID,
		&res.UserID,
		&res.Liked,
		&res.Disliked,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res.UpdatedAt = res.UpdatedAt.UTC()

	return &res, nil
}

// InteractionCounts возвращает счётчики лайков и дизлайков статьи.
func (s *Storage) InteractionCounts(ctx context.Context, articleID uuid.UUID) (int64, int64, error) {
	const op = "storage/postgres/interactions/InteractionCounts"

	q := `
	SELECT
		count(*) FILTER (WHERE liked),
		count(*) FILTER (WHERE disliked)
	FROM interactions
	WHERE article_id = $1
	`

	var likes, dislikes int64
	if err := s.db.QueryRow(ctx, q, articleID).Scan(&likes, &dislikes); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}

	return likes, dislikes, nil
}
