package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// Comments выполняет операции над комментариями к статьям.
type Comments interface {
	// CreateComment создаёт новый комментарий.
	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	// CommentByID возвращает комментарий по ID.
	CommentByID(ctx context.Context, id string) (*models.Comment, error)
	// ListComments возвращает страницу комментариев статьи, новые первыми.
	// Мягко удалённые комментарии в выдачу не попадают.
	ListComments(ctx context.Context, articleID uuid.UUID, opts models.ListOptions) ([]models.Comment, string, error)
	// DeleteComment мягко удаляет комментарий (is_deleted=true).
	DeleteComment(ctx context.Context, id string) error
	// Close закрывает соединение с хранилищем.
	Close(ctx context.Context) error
}
