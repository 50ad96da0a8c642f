package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// News выполняет операции над внешними новостями.
type News interface {
	// UpsertNews сохраняет пачку новостей с дедупликацией по source_id:
	// существующие записи обновляются, пустые поля не затирают заполненные.
	// Возвращает число затронутых строк.
	UpsertNews(ctx context.Context, items []models.FetchedNews) (int64, error)
	// NewsByID возвращает новость по ID.
	NewsByID(ctx context.Context, id uuid.UUID) (*models.FetchedNews, error)
	// ListNews возвращает страницу новостей, свежие первыми.
	// Пустая category — без фильтра.
	ListNews(ctx context.Context, category string, opts models.ListOptions) ([]models.FetchedNews, string, error)
}
