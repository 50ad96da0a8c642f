package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RajivKhattri/newsportal/internal/cache"
	"github.com/RajivKhattri/newsportal/internal/config"
	httptransport "github.com/RajivKhattri/newsportal/internal/http"
	"github.com/RajivKhattri/newsportal/internal/mailer"
	"github.com/RajivKhattri/newsportal/internal/newsdata"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/rssfeed"
	"github.com/RajivKhattri/newsportal/internal/service"
	"github.com/RajivKhattri/newsportal/internal/storage"
	"github.com/RajivKhattri/newsportal/internal/storage/minio"
	"github.com/RajivKhattri/newsportal/internal/storage/mongo"
	"github.com/RajivKhattri/newsportal/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)
	lg.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	rootCtx = log.Into(rootCtx, lg)

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		lg.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()
	lg.Info("postgres_connected")

	// MongoDB — комментарии.
	mongoCtx, mongoCancel := context.WithTimeout(rootCtx, 10*time.Second)
	comments, err := mongo.New(mongoCtx, cfg.Mongo.URL)
	mongoCancel()
	if err != nil {
		lg.Error("mongo_connect_failed", slog.String("err", err.Error()))
		str.Close()
		os.Exit(1)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = comments.Close(closeCtx)
		closeCancel()
	}()
	lg.Info("mongo_connected")

	// MinIO — документы, сертификаты, изображения.
	s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
	documents, err := minio.New(s3Ctx, cfg)
	s3Cancel()
	if err != nil {
		lg.Error("minio_connect_failed", slog.String("err", err.Error()))
		str.Close()
		os.Exit(1)
	}
	lg.Info("minio_connected")

	srvc := service.New(str, comments, documents, mailer.NewLogMailer(cfg.Mail.FrontendBaseURL, cfg.Mail.FromAddress), cfg)

	// Redis-кэш refresh-токенов — опционален: пустой URL отключает кэш.
	if cfg.Redis.URL != "" {
		rcache, err := cache.NewRedisCache(cfg.Redis.URL, "")
		if err != nil {
			lg.Error("redis_connect_failed", slog.String("err", err.Error()))
			str.Close()
			os.Exit(1)
		}
		defer func() { _ = rcache.Close() }()
		srvc.SetRefreshCache(rcache)
		lg.Info("redis_connected")
	}

	lg.Info("service_initialized")

	var ready int32 // 0 — not ready; 1 — ready

	// Служебный HTTP: liveness/readiness и метрики.
	opsMux := http.NewServeMux()
	opsMux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	opsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	opsMux.Handle("/metrics", promhttp.Handler())

	opsSrv := &http.Server{
		Addr:              cfg.Ops.Addr(),
		Handler:           opsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		lg.Info("ops_listen_start", "addr", opsSrv.Addr)
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("ops_serve_failed", slog.String("err", err.Error()))
		}
	}()

	// Основной REST API.
	apiSrv := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: httptransport.NewRouter(srvc, httptransport.Options{
			Logger:  lg,
			Timeout: cfg.Timeouts.Service,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Фоновый приём внешних новостей.
	startIngest(rootCtx, srvc, cfg, lg)

	// Фоновая очистка просроченных токенов.
	startTokenJanitor(rootCtx, str, lg, 30*time.Minute)

	serveErrCh := make(chan error, 1)
	go func() {
		lg.Info("http_listen_start", slog.String("addr", apiSrv.Addr))
		atomic.StoreInt32(&ready, 1)
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		lg.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			lg.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		lg.Warn("http_shutdown_failed", slog.String("err", err.Error()))
	}
	_ = opsSrv.Shutdown(context.Background())

	lg.Info("service_stopped")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var lg *slog.Logger

	switch env {
	case envLocal:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return lg
}

// startIngest запускает периодический приём внешних новостей.
// Без сконфигурированных источников приём не стартует.
func startIngest(ctx context.Context, srvc *service.Service, cfg *config.Config, lg *slog.Logger) {
	var providers []service.Provider

	if cfg.Fetcher.NewsDataAPIKey != "" {
		providers = append(providers, newsdata.New(nil,
			cfg.Fetcher.NewsDataBaseURL,
			cfg.Fetcher.NewsDataAPIKey,
			cfg.Fetcher.Language,
		))
	}
	if len(cfg.Fetcher.RSSSources) > 0 {
		providers = append(providers, rssfeed.New(cfg.Fetcher.RSSSources, 0))
	}

	if len(providers) == 0 {
		lg.Info("ingest_disabled")
		return
	}

	go func() {
		if err := srvc.StartIngest(ctx, providers); err != nil {
			lg.Error("ingest_failed", slog.String("err", err.Error()))
		}
	}()
}

// startTokenJanitor запускает фоновую задачу, которая периодически удаляет
// просроченные refresh-токены из хранилища.
func startTokenJanitor(ctx context.Context, st storage.RefreshTokens, lg *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := st.DeleteExpiredTokens(ctx, time.Now().UTC()); err != nil {
					lg.Error("token_janitor_failed", slog.String("err", err.Error()))
				}
			}
		}
	}()
}
