package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// maxTitleLength — предел длины заголовка статьи.
const maxTitleLength = 200

// CreateArticleInput — данные новой статьи.
type CreateArticleInput struct {
	Title    string
	Content  string
	Category string
	// Submit — сразу отправить на рецензию, минуя черновик.
	Submit bool
}

// ArticleView — статья со счётчиками реакций.
type ArticleView struct {
	Article  models.Article
	Likes    int64
	Dislikes int64
	// Viewer — реакция текущего пользователя, nil для анонима
	// и для пользователя без реакции.
	Viewer *models.Interaction
}

// CreateArticle создаёт статью автора: черновик либо сразу заявка на рецензию.
func (s *Service) CreateArticle(ctx context.Context, ident *Identity, input CreateArticleInput) (*models.Article, error) {
	const op = "service/articles/CreateArticle"

	if ident.Role != models.RoleAuthor && ident.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := validateArticleFields(input.Title, input.Content, input.Category); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status := models.ArticleStatusDraft
	if input.Submit {
		status = models.ArticleStatusPending
	}

	now := time.Now().UTC()
	article := &models.Article{
		ID:        uuid.New(),
		AuthorID:  ident.UserID,
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		Category:  strings.TrimSpace(input.Category),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.storage.CreateArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("article_created",
		slog.String("op", op),
		slog.String("article_id", created.ID.String()),
		slog.String("author_id", ident.UserID.String()),
		slog.String("status", string(created.Status)),
	)

	return created, nil
}

// ArticleByID возвращает статью со счётчиками реакций.
// Неопубликованная статья видна автору и модераторам статей;
// ident может быть nil для анонимного доступа.
func (s *Service) ArticleByID(ctx context.Context, ident *Identity, id uuid.UUID) (*ArticleView, error) {
	const op = "service/articles/ArticleByID"

	article, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if article.Status != models.ArticleStatusApproved {
		if ident == nil {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		if ident.UserID != article.AuthorID {
			if mErr := s.requireArticleModeration(ctx, ident); mErr != nil {
				// Чужой черновик не раскрывается даже существованием.
				return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
			}
		}
	}

	likes, dislikes, err := s.storage.InteractionCounts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var viewer *models.Interaction
	if ident != nil {
		viewer, err = s.storage.InteractionFor(ctx, id, ident.UserID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &ArticleView{Article: *article, Likes: likes, Dislikes: dislikes, Viewer: viewer}, nil
}

// UpdateArticle правит черновик или отклонённую статью автора.
func (s *Service) UpdateArticle(ctx context.Context, ident *Identity, id uuid.UUID, update storage.ArticleUpdate) (*models.Article, error) {
	const op = "service/articles/UpdateArticle"

	if update.Title != nil {
		if t := strings.TrimSpace(*update.Title); t == "" || len([]rune(t)) > maxTitleLength {
			fields := FieldErrors{}
			fields.Add("title", "title must be 1..200 characters")
			return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
		}
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		fields := FieldErrors{}
		fields.Add("content", "content is required")
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
	}

	article, err := s.storage.UpdateArticle(ctx, id, ident.UserID, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStateConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// DeleteArticle удаляет черновик или отклонённую статью автора.
func (s *Service) DeleteArticle(ctx context.Context, ident *Identity, id uuid.UUID) error {
	const op = "service/articles/DeleteArticle"

	if err := s.storage.DeleteArticle(ctx, id, ident.UserID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStateConflict):
			return fmt.Errorf("%s: %w", op, ErrStateConflict)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SubmitArticle отправляет статью автора на рецензию.
func (s *Service) SubmitArticle(ctx context.Context, ident *Identity, id uuid.UUID) (*models.Article, error) {
	const op = "service/articles/SubmitArticle"

	article, err := s.storage.SubmitArticle(ctx, id, ident.UserID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStateConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("article_submitted",
		slog.String("op", op),
		slog.String("article_id", id.String()),
		slog.String("author_id", ident.UserID.String()),
	)

	return article, nil
}

// ReviewArticle — решение рецензента: approve=true публикует статью,
// approve=false возвращает её автору с обязательным комментарием.
func (s *Service) ReviewArticle(ctx context.Context, ident *Identity, id uuid.UUID, approve bool, comments string) (*models.Article, error) {
	const op = "service/articles/ReviewArticle"

	if err := s.requireArticleModeration(ctx, ident); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comments = strings.TrimSpace(comments)
	status := models.ArticleStatusApproved
	if !approve {
		status = models.ArticleStatusRejected

		if comments == "" {
			fields := FieldErrors{}
			fields.Add("comments", "rejection comments are required")
			return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
		}
	}

	article, err := s.storage.ReviewArticle(ctx, id, ident.UserID, status, comments)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStateConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("article_reviewed",
		slog.String("op", op),
		slog.String("article_id", id.String()),
		slog.String("reviewer_id", ident.UserID.String()),
		slog.String("status", string(article.Status)),
	)

	return article, nil
}

// PublishedArticles возвращает страницу опубликованных статей.
// Пустая category — без фильтра.
func (s *Service) PublishedArticles(ctx context.Context, category string, opts models.ListOptions) ([]models.Article, string, error) {
	const op = "service/articles/PublishedArticles"

	status := models.ArticleStatusApproved
	filter := storage.ArticleFilter{
		Status:   &status,
		Category: strings.TrimSpace(category),
	}

	return s.listArticles(ctx, op, filter, opts)
}

// MyArticles возвращает страницу статей автора с опциональным фильтром по статусу.
func (s *Service) MyArticles(ctx context.Context, ident *Identity, status *models.ArticleStatus, opts models.ListOptions) ([]models.Article, string, error) {
	const op = "service/articles/MyArticles"

	filter := storage.ArticleFilter{
		Status:   status,
		AuthorID: uuid.NullUUID{UUID: ident.UserID, Valid: true},
	}

	return s.listArticles(ctx, op, filter, opts)
}

// ArticlesForReview возвращает модераторам страницу статей любых статусов
// с опциональным фильтром по одному статусу (например, очередь pending).
func (s *Service) ArticlesForReview(ctx context.Context, ident *Identity, status *models.ArticleStatus, opts models.ListOptions) ([]models.Article, string, error) {
	const op = "service/articles/ArticlesForReview"

	if err := s.requireArticleModeration(ctx, ident); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	filter := storage.ArticleFilter{Status: status}

	return s.listArticles(ctx, op, filter, opts)
}

func (s *Service) listArticles(ctx context.Context, op string, filter storage.ArticleFilter, opts models.ListOptions) ([]models.Article, string, error) {
	opts.Limit = s.limitOrDefault(opts.Limit)

	items, next, err := s.storage.ListArticles(ctx, filter, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return items, next, nil
}

// requireArticleModeration проверяет право рецензировать статьи:
// администратор, либо одобренный редактор с полномочием article_management.
func (s *Service) requireArticleModeration(ctx context.Context, ident *Identity) error {
	if ident.Role == models.RoleAdmin {
		return nil
	}

	if ident.Role != models.RoleEditor {
		return ErrPermissionDenied
	}

	profile, err := s.storage.ProfileByUserID(ctx, ident.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPermissionDenied
		}

		return err
	}

	if profile.ApprovalStatus != models.ApprovalStatusApproved {
		return ErrPermissionDenied
	}

	for _, r := range profile.ManagementResponsibilities {
		if r == models.ResponsibilityArticleManagement {
			return nil
		}
	}

	return ErrPermissionDenied
}

// validateArticleFields проверяет поля статьи, накапливая ошибки по полям.
func validateArticleFields(title, content, category string) error {
	fields := FieldErrors{}

	if t := strings.TrimSpace(title); t == "" {
		fields.Add("title", "title is required")
	} else if len([]rune(t)) > maxTitleLength {
		fields.Add("title", "title must be at most 200 characters")
	}

	if strings.TrimSpace(content) == "" {
		fields.Add("content", "content is required")
	}

	if strings.TrimSpace(category) == "" {
		fields.Add("category", "category is required")
	}

	if !fields.Empty() {
		return &ValidationError{Fields: fields}
	}

	return nil
}
