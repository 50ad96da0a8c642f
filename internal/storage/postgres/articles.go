package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

const articleColumns = `
id, author_id, title, content, category, image_key, status, editor_comments, reviewed_by, created_at, updated_at
`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var article models.Article
	var status string

	if err := row.Scan(
		&article.ID,
		&article.AuthorID,
		&article.Title,
		&article.Content,
		&article.Category,
		&article.ImageKey,
		&status,
		&article.EditorComments,
		&article.ReviewedBy,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}

	article.Status = models.ArticleStatus(status)
	article.CreatedAt = article.CreatedAt.UTC()
	article.UpdatedAt = article.UpdatedAt.UTC()

	return &article, nil
}

// CreateArticle вставляет новую статью.
func (s *Storage) CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	const op = "storage/postgres/articles/CreateArticle"

	q := `
	INSERT INTO articles (id, author_id, title, content, category, image_key, status, editor_comments)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + articleColumns

	row := s.db.QueryRow(ctx, q,
		article.ID,
		article.AuthorID,
		article.Title,
		article.Content,
		article.Category,
		article.ImageKey,
		string(article.Status),
		article.EditorComments,
	)

	result, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ArticleByID возвращает статью по ID.
func (s *Storage) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "storage/postgres/articles/ArticleByID"

	q := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// UpdateArticle выполняет частичный апдейт статьи автора в статусах draft/rejected.
// Статья другого автора или отсутствует — storage.ErrNotFound;
// недопустимый статус — storage.ErrStateConflict.
func (s *Storage) UpdateArticle(ctx context.Context, id, authorID uuid.UUID, update storage.ArticleUpdate) (*models.Article, error) {
	const op = "storage/postgres/articles/UpdateArticle"

	sets := []string{"updated_at = now()"}
	args := []any{id, authorID}
	count := 2

	if update.Title != nil {
		count++
		sets = append(sets, fmt.Sprintf("title = $%d", count))
		args = append(args, *update.Title)
	}
	if update.Content != nil {
		count++
		sets = append(sets, fmt.Sprintf("content = $%d", count))
		args = append(args, *update.Content)
	}
	if update.Category != nil {
		count++
		sets = append(sets, fmt.Sprintf("category = $%d", count))
		args = append(args, *update.Category)
	}

	q := `
	UPDATE articles
	SET ` + strings.Join(sets, ", ") + `
	WHERE id = $1 AND author_id = $2 AND status IN ('draft', 'rejected')
	RETURNING ` + articleColumns

	article, err := scanArticle(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.articleMutationError(ctx, op, id, authorID)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// DeleteArticle удаляет статью автора в статусах draft/rejected.
func (s *Storage) DeleteArticle(ctx context.Context, id, authorID uuid.UUID) error {
	const op = "storage/postgres/articles/DeleteArticle"

	tag, err := s.db.Exec(ctx, `
	DELETE FROM articles
	WHERE id = $1 AND author_id = $2 AND status IN ('draft', 'rejected')
	`, id, authorID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return s.articleMutationError(ctx, op, id, authorID)
	}

	return nil
}

// SubmitArticle переводит статью автора из draft/rejected в pending.
// Комментарии предыдущей рецензии при повторной отправке очищаются.
func (s *Storage) SubmitArticle(ctx context.Context, id, authorID uuid.UUID) (*models.Article, error) {
	const op = "storage/postgres/articles/SubmitArticle"

	q := `
	UPDATE articles
	SET status = 'pending', editor_comments = '', reviewed_by = NULL, updated_at = now()
	WHERE id = $1 AND author_id = $2 AND status IN ('draft', 'rejected')
	RETURNING ` + articleColumns

	article, err := scanArticle(s.db.QueryRow(ctx, q, id, authorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.articleMutationError(ctx, op, id, authorID)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// ReviewArticle переводит статью из pending в approved либо rejected.
// Статья не в pending — storage.ErrStateConflict.
func (s *Storage) ReviewArticle(ctx context.Context, id, reviewerID uuid.UUID, status models.ArticleStatus, comments string) (*models.Article, error) {
	const op = "storage/postgres/articles/ReviewArticle"

	q := `
	UPDATE articles
	SET status = $2, editor_comments = $3, reviewed_by = $4, updated_at = now()
	WHERE id = $1 AND status = 'pending'
	RETURNING ` + articleColumns

	article, err := scanArticle(s.db.QueryRow(ctx, q, id, string(status), comments, reviewerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, exErr := s.ArticleByID(ctx, id); exErr != nil {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, storage.ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// ConfirmArticleImageUpload фиксирует ключ обложки статьи автора.
func (s *Storage) ConfirmArticleImageUpload(ctx context.Context, id, authorID uuid.UUID, key string) (*models.Article, error) {
	const op = "storage/postgres/articles/ConfirmArticleImageUpload"

	q := `
	UPDATE articles
	SET image_key = $3, updated_at = now()
	WHERE id = $1 AND author_id = $2
	RETURNING ` + articleColumns

	article, err := scanArticle(s.db.QueryRow(ctx, q, id, authorID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// ListArticles возвращает страницу статей по фильтру с курсорной пагинацией.
// Сортировка фиксирована: created_at DESC, id DESC.
// При некорректном токене — storage.ErrInvalidCursor.
func (s *Storage) ListArticles(ctx context.Context, filter storage.ArticleFilter, opts models.ListOptions) ([]models.Article, string, error) {
	const op = "storage/postgres/articles/ListArticles"

	limit := normalizeLimit(opts.Limit)

	conds := []string{}
	args := []any{}
	count := 0

	if filter.Status != nil {
		count++
		conds = append(conds, fmt.Sprintf("status = $%d", count))
		args = append(args, string(*filter.Status))
	}
	if filter.AuthorID.Valid {
		count++
		conds = append(conds, fmt.Sprintf("author_id = $%d", count))
		args = append(args, filter.AuthorID.UUID)
	}
	if filter.Category != "" {
		count++
		conds = append(conds, fmt.Sprintf("category = $%d", count))
		args = append(args, filter.Category)
	}

	if opts.PageToken != "" {
		createdCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, "", fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		conds = append(conds, fmt.Sprintf("(created_at, id) < ($%d, $%d)", count+1, count+2))
		args = append(args, createdCur, idCur)
		count += 2
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	count++
	args = append(args, limit)

	q := fmt.Sprintf(`
	SELECT %s
	FROM articles
	%s
	ORDER BY created_at DESC, id DESC
	LIMIT $%d
	`, articleColumns, where, count)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			return nil, "", fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *article)
	}

	if rows.Err() != nil {
		return nil, "", fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	var next string
	if l := len(items); l > 0 {
		last := items[l-1]
		next = encodePageToken(last.CreatedAt, last.ID)
	}

	return items, next, nil
}

// articleMutationError различает «нет статьи этого автора» и «статья
// в недопустимом статусе» после неуспешного UPDATE/DELETE.
func (s *Storage) articleMutationError(ctx context.Context, op string, id, authorID uuid.UUID) error {
	article, err := s.ArticleByID(ctx, id)
	if err != nil || article.AuthorID != authorID {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return fmt.Errorf("%s: %w", op, storage.ErrStateConflict)
}
