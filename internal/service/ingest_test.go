package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

type stubProvider struct {
	name  string
	items []models.FetchedNews
	err   error
	panic bool
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Fetch(context.Context) ([]models.FetchedNews, error) {
	if p.panic {
		panic("provider exploded")
	}
	return p.items, p.err
}

func TestFetchNews_SavesNormalizedBatch(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	published := time.Date(2026, 2, 14, 10, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	provider := &stubProvider{
		name: "newsdata",
		items: []models.FetchedNews{
			{
				SourceID:    "nd-1",
				Title:       "Flood warning",
				SourceURL:   "https://example.com/1",
				PublishedAt: published,
			},
			// Без SourceID — отбрасывается до сохранения.
			{Title: "orphan", SourceURL: "https://example.com/2"},
		},
	}

	st.EXPECT().UpsertNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []models.FetchedNews) (int64, error) {
			require.Len(t, batch, 1)
			item := batch[0]
			require.Equal(t, "nd-1", item.SourceID)
			require.NotEqual(t, uuid.Nil, item.ID)
			require.Equal(t, time.UTC, item.PublishedAt.Location())
			require.False(t, item.FetchedAt.IsZero())
			return 1, nil
		})

	report := svc.FetchNews(context.Background(), provider)
	require.True(t, report.Success)
	require.Equal(t, int64(1), report.Saved)
}

// Заглушки контента ставятся на границе приёма независимо от провайдера.
func TestFetchNews_AppliesContentDefaults(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	provider := &stubProvider{
		name: "rss",
		items: []models.FetchedNews{
			{SourceID: "rss-1", Title: "Bare item", SourceURL: "https://example.com/bare", Summary: "  "},
		},
	}

	st.EXPECT().UpsertNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []models.FetchedNews) (int64, error) {
			require.Len(t, batch, 1)
			require.Equal(t, "No summary available", batch[0].Summary)
			require.Equal(t, "https://via.placeholder.com/400x200?text=News", batch[0].ImageURL)
			return 1, nil
		})

	report := svc.FetchNews(context.Background(), provider)
	require.True(t, report.Success)
}

func TestFetchNews_EmptyBatchSkipsStorage(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	report := svc.FetchNews(context.Background(), &stubProvider{name: "rss"})
	require.True(t, report.Success)
	require.Zero(t, report.Saved)
}

func TestFetchNews_ProviderError(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	provider := &stubProvider{name: "newsdata", err: errors.New("rate limited")}

	report := svc.FetchNews(context.Background(), provider)
	require.False(t, report.Success)
	require.Contains(t, report.Message, "fetch failed")
}

func TestFetchNews_ProviderPanicContained(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	report := svc.FetchNews(context.Background(), &stubProvider{name: "rss", panic: true})
	require.False(t, report.Success)
	require.Contains(t, report.Message, "provider panic")
}

func TestFetchNews_SaveError(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	provider := &stubProvider{
		name: "newsdata",
		items: []models.FetchedNews{
			{SourceID: "nd-2", Title: "t", SourceURL: "u"},
		},
	}
	st.EXPECT().UpsertNews(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	report := svc.FetchNews(context.Background(), provider)
	require.False(t, report.Success)
	require.Contains(t, report.Message, "save failed")
}

func TestStartIngest_NoProviders(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	err := svc.StartIngest(context.Background(), nil)
	require.Error(t, err)
}

func TestStartIngest_RunsFirstPassAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	svc.cfg.Fetcher.Interval = time.Hour

	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	st.EXPECT().UpsertNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []models.FetchedNews) (int64, error) {
			cancel()
			return 1, nil
		})

	go func() {
		defer close(done)
		err := svc.StartIngest(ctx, []Provider{&stubProvider{
			name:  "newsdata",
			items: []models.FetchedNews{{SourceID: "x", Title: "t", SourceURL: "u"}},
		}})
		require.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ingest loop did not stop after cancel")
	}
}

func TestTriggerIngest_AdminRunsPass(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	svc.setProviders([]Provider{&stubProvider{
		name:  "newsdata",
		items: []models.FetchedNews{{SourceID: "nd-3", Title: "t", SourceURL: "u"}},
	}})

	st.EXPECT().UpsertNews(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	report, err := svc.TriggerIngest(context.Background(), adminIdent())
	require.NoError(t, err)
	require.True(t, report.Success)
	require.Equal(t, int64(1), report.Saved)
}

// Сбой части провайдеров виден в итоговом сообщении прохода.
func TestTriggerIngest_PartialFailureReported(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	svc.setProviders([]Provider{
		&stubProvider{name: "rss", err: errors.New("feed down")},
		&stubProvider{
			name:  "newsdata",
			items: []models.FetchedNews{{SourceID: "nd-4", Title: "t", SourceURL: "u"}},
		},
	})

	st.EXPECT().UpsertNews(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	report, err := svc.TriggerIngest(context.Background(), adminIdent())
	require.NoError(t, err)
	require.False(t, report.Success)
	require.Equal(t, int64(1), report.Saved)
	require.Contains(t, report.Message, "1 of 2 providers failed")
}

func TestTriggerIngest_ReaderForbidden(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	svc.setProviders([]Provider{&stubProvider{name: "rss"}})

	_, err := svc.TriggerIngest(context.Background(), readerIdent())
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestTriggerIngest_NoProviders(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.TriggerIngest(context.Background(), adminIdent())
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestTriggerIngest_BusyPassReportsWithoutError(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	svc.setProviders([]Provider{&stubProvider{name: "rss"}})
	svc.ingestBusy.Store(true)

	report, err := svc.TriggerIngest(context.Background(), adminIdent())
	require.NoError(t, err)
	require.False(t, report.Success)
	require.Contains(t, report.Message, "already running")
}

func TestListNews_InvalidCursor(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListNews(gomock.Any(), "", gomock.Any()).
		Return(nil, "", storage.ErrInvalidCursor)

	_, _, err := svc.ListNews(context.Background(), "", models.ListOptions{PageToken: "zzz"})
	require.ErrorIs(t, err, ErrInvalidCursor)
}

func TestNews_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().NewsByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := svc.News(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
}
