// newsdata — клиент внешнего API NewsData.io (/api/1/news).
package newsdata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/RajivKhattri/newsportal/internal/models"
)

const (
	// Значения по умолчанию для пустых полей источника.
	defaultSummary  = "No summary available"
	defaultImageURL = "https://via.placeholder.com/400x200?text=News"

	// Формат pubDate в ответах NewsData.io (UTC без смещения).
	pubDateLayout = "2006-01-02 15:04:05"
)

// Client — HTTP-клиент NewsData.io. Ключ API передаётся снаружи
// и никогда не логируется.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
}

// New создаёт клиент NewsData.io.
func New(httpClient *http.Client, baseURL, apiKey, language string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		language:   language,
	}
}

// Name возвращает имя провайдера для логов и метрик.
func (c *Client) Name() string { return "newsdata" }

// response — верхний уровень ответа NewsData.io.
type response struct {
	Status  string   `json:"status"`
	Results []result `json:"results"`
}

// result — одна статья в ответе NewsData.io.
type result struct {
	ArticleID   string   `json:"article_id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	PubDate     string   `json:"pubDate"`
	ImageURL    string   `json:"image_url"`
	Category    []string `json:"category"`
}

// Fetch запрашивает свежие новости и приводит их к доменной модели.
// Поле FetchedAt в результатах нулевое — его проставляет оркестратор.
func (c *Client) Fetch(ctx context.Context) ([]models.FetchedNews, error) {
	const op = "newsdata/Fetch"

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var doc response
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	if doc.Status != "success" {
		return nil, fmt.Errorf("%s: api status %q", op, doc.Status)
	}

	now := time.Now().UTC()

	var output []models.FetchedNews
	for _, item := range doc.Results {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		output = append(output, models.FetchedNews{
			SourceID:    SourceID(item.ArticleID, link, item.PubDate),
			Title:       title,
			Summary:     summaryOrDefault(item.Description),
			Content:     strings.TrimSpace(item.Content),
			SourceURL:   link,
			ImageURL:    imageOrDefault(item.ImageURL, item.Content),
			Category:    firstOrEmptyCategory(item.Category),
			PublishedAt: parsePubDate(item.PubDate, now),
		})
	}

	return output, nil
}

// SourceID возвращает стабильный идентификатор статьи во внешнем источнике:
// article_id, если он задан, иначе sha256(link+pubDate).
func SourceID(articleID, link, pubDate string) string {
	if id := strings.TrimSpace(articleID); id != "" {
		return id
	}

	sum := sha256.Sum256([]byte(link + pubDate))

	return hex.EncodeToString(sum[:])
}

func summaryOrDefault(description string) string {
	if s := strings.TrimSpace(description); s != "" {
		return s
	}

	return defaultSummary
}

// imageOrDefault выбирает URL обложки: image_url источника,
// иначе первая <img src> из HTML-содержимого, иначе заглушка.
func imageOrDefault(imageURL, contentHTML string) string {
	if u := strings.TrimSpace(imageURL); u != "" {
		return u
	}

	if u := firstImgSrc(contentHTML); u != "" {
		return u
	}

	return defaultImageURL
}

// firstImgSrc извлекает src первого тега <img> из HTML.
func firstImgSrc(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	src, _ := doc.Find("img").First().Attr("src")

	return strings.TrimSpace(src)
}

func firstOrEmptyCategory(categories []string) string {
	if len(categories) == 0 {
		return ""
	}

	return strings.TrimSpace(categories[0])
}

// parsePubDate разбирает pubDate формата "2006-01-02 15:04:05" как UTC.
// Нечитаемое или пустое значение — текущее время.
func parsePubDate(value string, now time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return now
	}

	t, err := time.ParseInLocation(pubDateLayout, value, time.UTC)
	if err != nil {
		return now
	}

	return t.UTC()
}
