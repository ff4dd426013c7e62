package main

import (
	"context"
	"database/sql"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	_ "modernc.org/sqlite"

	"waitlist/backend/internal/config"
	"waitlist/backend/internal/db"
	"waitlist/backend/internal/handler"
	gh "waitlist/backend/internal/http"
	"waitlist/backend/internal/metrics"
	"waitlist/backend/internal/ratelimit"
	"waitlist/backend/internal/repository"
	"waitlist/backend/internal/service"
	"waitlist/backend/pkg/logger"
	"waitlist/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		logger.Error("failed to initialize ID generator", "error", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("failed to create data directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}
	database, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var rec metrics.Recorder = metrics.NopRecorder{}
	var metricsHandler nethttp.Handler
	if cfg.MetricsEnabled {
		prom := metrics.NewPromRecorder()
		rec = prom
		metricsHandler = prom.Handler()
	}

	var verifier service.BotVerifier
	if cfg.TurnstileEnabled {
		verifier = service.NewTurnstileVerifier(cfg.TurnstileURL, cfg.TurnstileSecretKey, cfg.VerifyTimeout)
	}

	notifier := service.NewNopNotifier()
	if cfg.WebhookURL != "" {
		notifier = service.NewWebhookNotifier(cfg.WebhookURL, cfg.NotifyTimeout)
	}

	store := repository.NewSQLiteSignupStore(database)
	signupService := service.NewSignupService(store, verifier, notifier, rec, service.Options{
		DefaultTab:       cfg.DefaultTab,
		DedupeAcrossTabs: cfg.DedupeAcrossTabs,
		RequireBotCheck:  cfg.TurnstileEnabled,
		NotifyTimeout:    cfg.NotifyTimeout,
	})

	var limiter ratelimit.Store
	if cfg.RateLimitBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		limiter = ratelimit.NewRedisStore(client, cfg.RateLimitWindow, cfg.RateLimitMax)
	} else {
		limiter = ratelimit.NewMemoryStore(cfg.RateLimitWindow, cfg.RateLimitMax)
	}

	signupHandler := handler.NewSignupHandler(signupService, cfg.ExtendedEnabled, cfg.BulkEnabled)
	systemHandler := handler.NewSystemHandler(cfg, metricsHandler)

	e := gh.NewRouter(signupHandler, systemHandler, limiter, rec, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		// Let in-flight detached notifications finish before exit
		signupService.Drain()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
