package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// ArticleUpdate — частичный апдейт статьи.
// Параметры задаются pointer-полями: только непустые указатели обновляются в БД.
type ArticleUpdate struct {
	Title    *string
	Content  *string
	Category *string
}

// ArticleFilter — фильтр листинга статей.
type ArticleFilter struct {
	// Status ограничивает выборку одним статусом (nil — без ограничения).
	Status *models.ArticleStatus
	// AuthorID ограничивает выборку статьями одного автора.
	AuthorID uuid.NullUUID
	// Category ограничивает выборку одной категорией (пустая строка — без ограничения).
	Category string
}

// Articles выполняет операции над авторскими статьями.
type Articles interface {
	// CreateArticle создаёт новую статью.
	CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	// ArticleByID возвращает статью по ID.
	ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	// UpdateArticle выполняет частичное обновление статьи автора.
	// Статья не принадлежит автору — ErrNotFound; статья не в статусах
	// draft/rejected — ErrStateConflict.
	UpdateArticle(ctx context.Context, id, authorID uuid.UUID, update ArticleUpdate) (*models.Article, error)
	// DeleteArticle удаляет статью автора в статусах draft/rejected.
	DeleteArticle(ctx context.Context, id, authorID uuid.UUID) error
	// SubmitArticle переводит статью автора из draft/rejected в pending.
	SubmitArticle(ctx context.Context, id, authorID uuid.UUID) (*models.Article, error)
	// ReviewArticle переводит статью из pending в approved либо rejected,
	// фиксируя рецензента и комментарии. Статья не в pending — ErrStateConflict.
	ReviewArticle(ctx context.Context, id, reviewerID uuid.UUID, status models.ArticleStatus, comments string) (*models.Article, error)
	// ConfirmArticleImageUpload фиксирует ключ обложки статьи.
	ConfirmArticleImageUpload(ctx context.Context, id, authorID uuid.UUID, key string) (*models.Article, error)
	// ListArticles возвращает страницу статей по фильтру, новые первыми.
	ListArticles(ctx context.Context, filter ArticleFilter, opts models.ListOptions) ([]models.Article, string, error)
}
