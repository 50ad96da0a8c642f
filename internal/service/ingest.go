package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/metrics"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// Provider описывает абстракцию внешнего источника новостей
// (NewsData.io, RSS-ленты и т.п.).
//
// Требования к реализации:
//  1. Поле FetchedAt в возвращаемых items должно быть нулевым —
//     его проставляет оркестратор сервиса.
//  2. SourceID обязан быть стабильным для одной и той же статьи источника —
//     на нём строится идемпотентность на уровне БД.
//  3. Реализация обязана уважать ctx (отмена/таймауты).
type Provider interface {
	// Name — имя провайдера для логов и метрик.
	Name() string
	// Fetch возвращает свежие новости провайдера.
	Fetch(ctx context.Context) ([]models.FetchedNews, error)
}

// FetchReport — итог одного прохода приёма. Граница нарочно не возвращает
// ошибку: сбой источника фиксируется в Message и метриках, но не
// останавливает ни вызывающего, ни периодический цикл.
type FetchReport struct {
	Success bool
	Message string
	Saved   int64
}

// StartIngest запускает периодический опрос провайдеров.
// Останавливается по ctx.
func (s *Service) StartIngest(ctx context.Context, providers []Provider) error {
	const op = "service/ingest/StartIngest"

	if len(providers) == 0 {
		return fmt.Errorf("%s: no providers configured", op)
	}

	interval := s.cfg.Fetcher.Interval

	lg := log.From(ctx)
	lg.Info("ingest_start",
		slog.String("op", op),
		slog.Int("providers", len(providers)),
		slog.Duration("interval", interval),
	)

	s.setProviders(providers)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.ingestAll(ctx, providers)

	for {
		select {
		case <-ctx.Done():
			lg.Info("ingest_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			s.ingestAll(ctx, providers)
		}
	}
}

// TriggerIngest — ручной запуск одного прохода приёма (модераторы статей).
// Проход сериализуется с тикером: параллельный запуск получает отказ
// в Message, но не ошибку.
func (s *Service) TriggerIngest(ctx context.Context, ident *Identity) (*FetchReport, error) {
	const op = "service/ingest/TriggerIngest"

	if err := s.requireArticleModeration(ctx, ident); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	providers := s.loadProviders()
	if len(providers) == 0 {
		return nil, fmt.Errorf("%s: no providers configured: %w", op, ErrStateConflict)
	}

	return s.ingestAll(ctx, providers), nil
}

// ingestAll — один проход по всем провайдерам под one-shot guard.
func (s *Service) ingestAll(ctx context.Context, providers []Provider) *FetchReport {
	if !s.ingestBusy.CompareAndSwap(false, true) {
		return &FetchReport{Success: false, Message: "ingest already running"}
	}
	defer s.ingestBusy.Store(false)

	var saved int64
	var failed int

	for _, p := range providers {
		report := s.FetchNews(ctx, p)

		outcome := "success"
		if !report.Success {
			outcome = "failure"
			failed++
		}
		metrics.IngestRuns.WithLabelValues(p.Name(), outcome).Inc()

		saved += report.Saved
	}

	// Частичный сбой виден в итоговом сообщении, не только в метриках.
	message := fmt.Sprintf("fetched and stored %d articles", saved)
	if failed > 0 {
		message = fmt.Sprintf("fetched and stored %d articles, %d of %d providers failed",
			saved, failed, len(providers))
	}

	return &FetchReport{
		Success: failed == 0,
		Message: message,
		Saved:   saved,
	}
}

// FetchNews — один проход приёма от провайдера: загрузка, нормализация,
// upsert по source_id. Паника провайдера перехватывается на границе.
func (s *Service) FetchNews(ctx context.Context, provider Provider) (report *FetchReport) {
	const op = "service/ingest/FetchNews"

	lg := log.From(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			lg.Error("ingest_panic",
				slog.String("op", op),
				slog.String("provider", provider.Name()),
				slog.Any("panic", rec),
			)
			report = &FetchReport{Success: false, Message: fmt.Sprintf("provider panic: %v", rec)}
		}
	}()

	items, err := provider.Fetch(ctx)
	if err != nil {
		lg.Warn("ingest_fetch_error",
			slog.String("op", op),
			slog.String("provider", provider.Name()),
			slog.String("err", err.Error()),
		)
		return &FetchReport{Success: false, Message: fmt.Sprintf("fetch failed: %v", err)}
	}

	now := time.Now().UTC()
	batch := make([]models.FetchedNews, 0, len(items))
	for _, item := range items {
		if news, ok := finalizeNews(item, now); ok {
			batch = append(batch, news)
		}
	}

	if len(batch) == 0 {
		lg.Info("ingest_empty",
			slog.String("op", op),
			slog.String("provider", provider.Name()),
		)
		return &FetchReport{Success: true, Message: "no new articles"}
	}

	saved, err := s.storage.UpsertNews(ctx, batch)
	if err != nil {
		lg.Error("ingest_save_error",
			slog.String("op", op),
			slog.String("provider", provider.Name()),
			slog.String("err", err.Error()),
		)
		return &FetchReport{Success: false, Message: fmt.Sprintf("save failed: %v", err)}
	}

	metrics.IngestItems.WithLabelValues(provider.Name()).Add(float64(saved))

	lg.Info("ingest_saved",
		slog.String("op", op),
		slog.String("provider", provider.Name()),
		slog.Int("total_items", len(items)),
		slog.Int("batch", len(batch)),
		slog.Int64("saved", saved),
	)

	return &FetchReport{
		Success: true,
		Message: fmt.Sprintf("fetched and stored %d articles", saved),
		Saved:   saved,
	}
}

// Заглушки контента применяются на общей границе приёма:
// инвариант держится для любого провайдера, а не только для NewsData.io.
const (
	defaultSummary  = "No summary available"
	defaultImageURL = "https://via.placeholder.com/400x200?text=News"
)

// finalizeNews доводит запись до инвариантов домена:
//   - Title/SourceURL/SourceID обязательны — иначе запись отбрасывается;
//   - ID := новый UUID, если не задан;
//   - пустые Summary/ImageURL заменяются заглушками;
//   - PublishedAt := PublishedAt || nowUTC (UTC);
//   - FetchedAt := nowUTC (перекрывает любые внешние значения).
//
// Возвращает (новость, ok=false если запись следует отбросить).
func finalizeNews(news models.FetchedNews, nowUTC time.Time) (models.FetchedNews, bool) {
	if news.Title == "" || news.SourceURL == "" || news.SourceID == "" {
		return models.FetchedNews{}, false
	}

	if strings.TrimSpace(news.Summary) == "" {
		news.Summary = defaultSummary
	}
	if news.ImageURL == "" {
		news.ImageURL = defaultImageURL
	}

	if news.ID == uuid.Nil {
		news.ID = uuid.New()
	}

	if news.PublishedAt.IsZero() {
		news.PublishedAt = nowUTC
	} else {
		news.PublishedAt = news.PublishedAt.UTC()
	}

	news.FetchedAt = nowUTC

	return news, true
}

// News возвращает новость по идентификатору.
func (s *Service) News(ctx context.Context, id uuid.UUID) (*models.FetchedNews, error) {
	const op = "service/ingest/News"

	item, err := s.storage.NewsByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// ListNews возвращает страницу внешних новостей, свежие первыми.
func (s *Service) ListNews(ctx context.Context, category string, opts models.ListOptions) ([]models.FetchedNews, string, error) {
	const op = "service/ingest/ListNews"

	opts.Limit = s.limitOrDefault(opts.Limit)

	items, next, err := s.storage.ListNews(ctx, category, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return items, next, nil
}
