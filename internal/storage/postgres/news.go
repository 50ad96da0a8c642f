package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

const newsColumns = `
id, source_id, title, summary, content, source_url, image_url, category, published_at, fetched_at
`

func scanNews(row pgx.Row) (*models.FetchedNews, error) {
	var item models.FetchedNews

	if err := row.Scan(
		&item.ID,
		&item.SourceID,
		&item.Title,
		&item.Summary,
		&item.Content,
		&item.SourceURL,
		&item.ImageURL,
		&item.Category,
		&item.PublishedAt,
		&item.FetchedAt,
	); err != nil {
		return nil, err
	}

	item.PublishedAt = item.PublishedAt.UTC()
	item.FetchedAt = item.FetchedAt.UTC()

	return &item, nil
}

// UpsertNews сохраняет пачку новостей с upsert по source_id.
//
// Политика обновления:
//   - title — всегда обновляется, если пришёл другой;
//   - summary/content/image_url/category — обновляются, только если пришли новые непустые значения;
//   - published_at — не меняется;
//   - fetched_at — обновляется всегда.
//
// Возвращает число затронутых строк.
func (s *Storage) UpsertNews(ctx context.Context, items []models.FetchedNews) (int64, error) {
	const op = "storage/postgres/news/UpsertNews"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
		INSERT INTO fetched_news (id, source_id, title, summary, content, source_url, image_url, category, published_at, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (source_id) DO UPDATE
		SET
		title = EXCLUDED.title,
		summary = CASE WHEN EXCLUDED.summary <> ''
			THEN EXCLUDED.summary ELSE fetched_news.summary END,
		content = CASE WHEN EXCLUDED.content <> ''
			THEN EXCLUDED.content ELSE fetched_news.content END,
		image_url = CASE WHEN EXCLUDED.image_url <> ''
			THEN EXCLUDED.image_url ELSE fetched_news.image_url END,
		category = CASE WHEN EXCLUDED.category <> ''
			THEN EXCLUDED.category ELSE fetched_news.category END,
		fetched_at = EXCLUDED.fetched_at
		`, item.ID, item.SourceID, item.Title, item.Summary, item.Content,
			item.SourceURL, item.ImageURL, item.Category,
			item.PublishedAt.UTC(), item.FetchedAt.UTC())
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	var affected int64
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return affected, fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}

		affected += tag.RowsAffected()
	}

	return affected, nil
}

// NewsByID возвращает новость по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) NewsByID(ctx context.Context, id uuid.UUID) (*models.FetchedNews, error) {
	const op = "storage/postgres/news/NewsByID"

	q := `SELECT ` + newsColumns + ` FROM fetched_news WHERE id = $1`

	item, err := scanNews(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// ListNews возвращает страницу новостей с курсорной пагинацией.
// Сортировка фиксирована: published_at DESC, id DESC.
// Пустая category — без фильтра. При некорректном токене — storage.ErrInvalidCursor.
func (s *Storage) ListNews(ctx context.Context, category string, opts models.ListOptions) ([]models.FetchedNews, string, error) {
	const op = "storage/postgres/news/ListNews"

	limit := normalizeLimit(opts.Limit)

	conds := []string{}
	args := []any{}
	count := 0

	if category != "" {
		count++
		conds = append(conds, fmt.Sprintf("category = $%d", count))
		args = append(args, category)
	}

	if opts.PageToken != "" {
		pubCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, "", fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		conds = append(conds, fmt.Sprintf("(published_at, id) < ($%d, $%d)", count+1, count+2))
		args = append(args, pubCur, idCur)
		count += 2
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + conds[0]
		for _, c := range conds[1:] {
			where += " AND " + c
		}
	}

	count++
	args = append(args, limit)

	q := fmt.Sprintf(`
	SELECT %s
	FROM fetched_news
	%s
	ORDER BY published_at DESC, id DESC
	LIMIT $%d
	`, newsColumns, where, count)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.FetchedNews
	for rows.Next() {
		item, scanErr := scanNews(rows)
		if scanErr != nil {
			return nil, "", fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *item)
	}

	if rows.Err() != nil {
		return nil, "", fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	var next string
	if l := len(items); l > 0 {
		last := items[l-1]
		next = encodePageToken(last.PublishedAt, last.ID)
	}

	return items, next, nil
}
