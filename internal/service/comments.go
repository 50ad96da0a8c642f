package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// maxCommentLength — предел длины комментария.
const maxCommentLength = 2000

// AddComment создаёт комментарий к опубликованной статье.
// Имя пользователя снимается в момент создания.
func (s *Service) AddComment(ctx context.Context, ident *Identity, articleID uuid.UUID, content string) (*models.Comment, error) {
	const op = "service/comments/AddComment"

	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > maxCommentLength {
		fields := FieldErrors{}
		fields.Add("content", "content must be 1..2000 characters")
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
	}

	article, err := s.storage.ArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if article.Status != models.ArticleStatusApproved {
		return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
	}

	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    ident.UserID,
		Username:  ident.Username,
		Content:   content,
	}

	created, err := s.comments.CreateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Debug("comment_added",
		slog.String("op", op),
		slog.String("article_id", articleID.String()),
		slog.String("comment_id", created.ID),
	)

	return created, nil
}

// CommentsByArticle возвращает страницу комментариев статьи, новые первыми.
func (s *Service) CommentsByArticle(ctx context.Context, articleID uuid.UUID, opts models.ListOptions) ([]models.Comment, string, error) {
	const op = "service/comments/CommentsByArticle"

	opts.Limit = s.limitOrDefault(opts.Limit)

	items, next, err := s.comments.ListComments(ctx, articleID, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return items, next, nil
}

// DeleteComment мягко удаляет комментарий.
// Разрешено владельцу, администратору и редактору с модерацией статей.
func (s *Service) DeleteComment(ctx context.Context, ident *Identity, id string) error {
	const op = "service/comments/DeleteComment"

	comment, err := s.comments.CommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if comment.UserID != ident.UserID {
		if mErr := s.requireArticleModeration(ctx, ident); mErr != nil {
			return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
		}
	}

	if err := s.comments.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("comment_deleted",
		slog.String("op", op),
		slog.String("comment_id", id),
		slog.String("deleted_by", ident.UserID.String()),
	)

	return nil
}
