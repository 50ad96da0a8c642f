package newsdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"status": "success",
	"results": [
		{
			"article_id": "abc-123",
			"title": "Go 1.24 released",
			"link": "https://example.com/go-release",
			"description": "Release notes",
			"content": "<p>Full text <img src='https://img.example.com/go.png'/></p>",
			"pubDate": "2025-03-01 10:30:00",
			"image_url": "https://img.example.com/cover.png",
			"category": ["technology", "software"]
		},
		{
			"article_id": "",
			"title": "No extras",
			"link": "https://example.com/no-extras",
			"description": "",
			"content": "",
			"pubDate": "not-a-date",
			"image_url": "",
			"category": []
		},
		{
			"article_id": "skip-me",
			"title": "   ",
			"link": "https://example.com/empty-title"
		}
	]
}`

func TestClient_Fetch_OK(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL, "secret-key", "en")

	items, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, []string{"secret-key"}, gotQuery["apikey"])
	require.Equal(t, []string{"en"}, gotQuery["language"])

	first := items[0]
	require.Equal(t, "abc-123", first.SourceID)
	require.Equal(t, "Go 1.24 released", first.Title)
	require.Equal(t, "Release notes", first.Summary)
	require.Equal(t, "https://example.com/go-release", first.SourceURL)
	require.Equal(t, "https://img.example.com/cover.png", first.ImageURL)
	require.Equal(t, "technology", first.Category)
	require.Equal(t, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC), first.PublishedAt)
	require.True(t, first.FetchedAt.IsZero())

	second := items[1]
	// Пустой article_id — стабильный хэш от link+pubDate.
	require.Len(t, second.SourceID, 64)
	require.Equal(t, "No summary available", second.Summary)
	require.Equal(t, defaultImageURL, second.ImageURL)
	require.Equal(t, "", second.Category)
	// Нечитаемый pubDate — подставляется текущее время.
	require.WithinDuration(t, time.Now().UTC(), second.PublishedAt, time.Minute)
}

func TestClient_Fetch_APIFailureStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "results": []}`))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL, "secret-key", "")

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), `api status "error"`)
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL, "secret-key", "")

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
}

func TestSourceID_Deterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, "given-id", SourceID("given-id", "https://x", "2025-01-01 00:00:00"))

	a := SourceID("", "https://x", "2025-01-01 00:00:00")
	b := SourceID("", "https://x", "2025-01-01 00:00:00")
	c := SourceID("", "https://x", "2025-01-01 00:00:01")
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestFirstImgSrc(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://img.example.com/1.png",
		firstImgSrc(`<div><img src="https://img.example.com/1.png"><img src="https://img.example.com/2.png"></div>`))
	require.Equal(t, "", firstImgSrc("<p>no images</p>"))
	require.Equal(t, "", firstImgSrc(""))
}
