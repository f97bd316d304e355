package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "promo-planner/internal/adapter/http"
	"promo-planner/internal/adapter/memory"
	"promo-planner/internal/adapter/postgres"
	"promo-planner/internal/adapter/usecase"
	"promo-planner/internal/config"
	"promo-planner/internal/config/configs"
	"promo-planner/internal/core/port"
	"promo-planner/internal/db"
	"promo-planner/internal/metrics"
)

// main is the entry point of the promo planner. It loads configuration,
// selects the event store (optionally migrating and seeding it), then
// serves the rollover API until it receives a termination signal.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("event store error", slog.Any("error", err))
		return
	}
	defer closeRepo()

	if cfg.Store.Seed {
		if err = db.Seed(ctx, repo, db.FixtureEvents()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo events seeded")
	}

	rolloverMetrics := metrics.NewRollover()
	svc := usecase.NewRolloverUseCase(repo, logger, rolloverMetrics)

	handler := httpadapter.NewHandler(svc, logger, rolloverMetrics.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.NormalizedDriver()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openRepository builds the configured event store. The returned func
// releases its resources.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.EventRepository, func(), error) {
	if cfg.Store.NormalizedDriver() == configs.StoreDriverMemory {
		return memory.NewEventRepository(), func() {}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return postgres.NewEventRepository(pool), pool.Close, nil
}
