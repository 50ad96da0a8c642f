// rssfeed — дополнительный провайдер новостей из RSS/Atom-лент (gofeed).
package rssfeed

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/newsdata"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
)

// Provider парсит набор RSS/Atom-лент и приводит записи к доменной модели.
// Ошибка одной ленты не прерывает остальные. Поле FetchedAt в результатах
// нулевое — его проставляет оркестратор.
type Provider struct {
	parser  *gofeed.Parser
	sources []string
	maxConc int
}

// New создаёт RSS-провайдер по списку URL лент.
func New(sources []string, maxConcurrent int) *Provider {
	if maxConcurrent <= 0 {
		maxConcurrent = 6
	}

	return &Provider{
		parser:  gofeed.NewParser(),
		sources: sources,
		maxConc: maxConcurrent,
	}
}

// Name возвращает имя провайдера для логов и метрик.
func (p *Provider) Name() string { return "rss" }

// Fetch конкурентно парсит все ленты и собирает единый срез записей.
func (p *Provider) Fetch(ctx context.Context) ([]models.FetchedNews, error) {
	const op = "rssfeed/Fetch"

	lg := log.From(ctx)

	var mu sync.Mutex
	var output []models.FetchedNews

	sem := make(chan struct{}, p.maxConc)
	var wg sync.WaitGroup

	for _, src := range p.sources {
		select {
		case <-ctx.Done():
			// Уже запущенные горутины дорабатывают (их HTTP-запросы
			// уважают ctx); читать output до Wait нельзя.
			wg.Wait()
			return output, ctx.Err()
		default:
		}

		src := src
		sem <- struct{}{}
		wg.Add(1)

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			feed, err := p.parser.ParseURLWithContext(src, ctx)
			if err != nil {
				lg.Warn("feed_parse_error",
					slog.String("op", op),
					slog.String("url", src),
					slog.String("err", err.Error()),
				)
				return
			}

			items := convertFeed(feed)

			mu.Lock()
			output = append(output, items...)
			mu.Unlock()
		}()
	}

	wg.Wait()

	return output, nil
}

// convertFeed приводит записи одной ленты к доменной модели.
// Записи без заголовка или ссылки отбрасываются.
func convertFeed(feed *gofeed.Feed) []models.FetchedNews {
	var output []models.FetchedNews

	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		var published time.Time
		switch {
		case item.PublishedParsed != nil:
			published = item.PublishedParsed.UTC()
		case item.UpdatedParsed != nil:
			published = item.UpdatedParsed.UTC()
		}

		output = append(output, models.FetchedNews{
			SourceID:    newsdata.SourceID("", link, item.Published),
			Title:       title,
			Summary:     strings.TrimSpace(item.Description),
			Content:     strings.TrimSpace(item.Content),
			SourceURL:   link,
			ImageURL:    pickImageURL(item),
			Category:    firstOrEmptyCategory(item.Categories),
			PublishedAt: published,
		})
	}

	return output
}

// pickImageURL выбирает URL обложки: item.Image, иначе enclosure image/*.
func pickImageURL(item *gofeed.Item) string {
	if item.Image != nil && strings.TrimSpace(item.Image.URL) != "" {
		return strings.TrimSpace(item.Image.URL)
	}

	for _, e := range item.Enclosures {
		if e == nil || e.URL == "" {
			continue
		}

		if t := strings.ToLower(e.Type); t == "" || strings.HasPrefix(t, "image/") {
			return e.URL
		}
	}

	return ""
}

func firstOrEmptyCategory(categories []string) string {
	if len(categories) == 0 {
		return ""
	}

	return strings.TrimSpace(categories[0])
}
