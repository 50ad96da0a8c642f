package rssfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Example feed</title>
	<item>
		<title>First post</title>
		<link>https://example.com/first</link>
		<description>Short summary</description>
		<category>technology</category>
		<pubDate>Sat, 01 Mar 2025 10:30:00 +0000</pubDate>
		<enclosure url="https://img.example.com/first.png" type="image/png" length="1234"/>
	</item>
	<item>
		<title></title>
		<link>https://example.com/skipped</link>
	</item>
	<item>
		<title>No date</title>
		<link>https://example.com/no-date</link>
	</item>
</channel>
</rss>`

func TestProvider_Fetch_OK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	provider := New([]string{srv.URL}, 2)

	items, err := provider.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	require.Equal(t, "First post", first.Title)
	require.Equal(t, "https://example.com/first", first.SourceURL)
	require.Equal(t, "Short summary", first.Summary)
	require.Equal(t, "technology", first.Category)
	require.Equal(t, "https://img.example.com/first.png", first.ImageURL)
	require.Equal(t, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC), first.PublishedAt)
	require.NotEmpty(t, first.SourceID)
	require.True(t, first.FetchedAt.IsZero())

	second := items[1]
	require.Equal(t, "No date", second.Title)
	require.True(t, second.PublishedAt.IsZero())
}

func TestProvider_Fetch_BadFeedDoesNotFail(t *testing.T) {
	t.Parallel()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer ok.Close()

	provider := New([]string{bad.URL, ok.URL}, 2)

	items, err := provider.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
}

// Отмена посреди прохода: Fetch дожидается уже запущенных горутин
// и возвращает ctx.Err, не запуская оставшиеся ленты.
func TestProvider_Fetch_CanceledMidRun(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	slow := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		once.Do(cancel)
		<-r.Context().Done()
	}))
	defer slow.Close()

	provider := New([]string{slow.URL, slow.URL, slow.URL}, 1)

	items, err := provider.Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, items)
}
