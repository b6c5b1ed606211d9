package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipfund/internal/adapter/gemini"
	httpadapter "clipfund/internal/adapter/http"
	"clipfund/internal/adapter/postgres"
	"clipfund/internal/adapter/usecase"
	"clipfund/internal/adapter/viewcount"
	"clipfund/internal/config"
	"clipfund/internal/core/port"
	"clipfund/internal/db"
)

// main is the entry point of the clipfund service. It loads configuration,
// optionally runs database migrations, initializes the database pool and
// repositories, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	submissionRepo := postgres.NewSubmissionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	var views port.ViewSource
	if cfg.Viewcount.LookupURL != "" {
		views = viewcount.NewClient(cfg.Viewcount.LookupURL, cfg.Viewcount.Timeout)
	} else {
		views = viewcount.NewYouTubeScraper(cfg.Viewcount.Timeout)
	}

	campaigns := usecase.NewCampaignUseCase(campaignRepo, userRepo)
	submissions := usecase.NewSubmissionUseCase(submissionRepo, campaignRepo, userRepo)
	sweeps := usecase.NewSweepUseCase(campaignRepo, submissionRepo, views, logger)
	users := usecase.NewUserUseCase(userRepo, campaignRepo, submissionRepo)
	validator := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	handler := httpadapter.NewHandler(campaigns, submissions, sweeps, users, validator, cfg.Cron.Secret, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
