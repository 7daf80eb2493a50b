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
	"time"

	httpadapter "anonvote/internal/adapter/http"
	"anonvote/internal/adapter/memory"
	"anonvote/internal/adapter/postgres"
	"anonvote/internal/adapter/usecase"
	"anonvote/internal/config"
	"anonvote/internal/config/configs"
	"anonvote/internal/core/port"
	"anonvote/internal/db"
)

// main loads configuration, wires storage (in-memory or PostgreSQL), then
// serves the election API until SIGINT or SIGTERM, shutting down gracefully.
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

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, groups, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.Any("error", err))
		return
	}
	defer closeStorage()

	factory := usecase.NewCampaignFactory(repo, groups, port.SystemClock, logger)
	campaigns := usecase.NewCampaignUseCase(repo, groups, port.SystemClock, logger)

	if cfg.Storage.Seed {
		if err = db.Seed(ctx, factory); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	handler := httpadapter.NewHandler(factory, campaigns, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
	if err = serve(ctx, srv, cfg.HTTP.ShutdownTimeout); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}

// serve runs srv until ctx is done and then shuts it down within timeout.
// A listener failure is returned right away, without waiting for ctx.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStorage returns the repository and group service for the configured
// driver together with a function releasing their resources.
func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, port.GroupService, func(), error) {
	kind, err := cfg.Storage.Kind()
	if err != nil {
		return nil, nil, nil, err
	}
	if kind == configs.StorageMemory {
		logger.Info("using in-memory storage")
		return memory.NewCampaignRepository(), memory.NewGroupService(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connection: %w", err)
	}
	logger.Info("using postgres storage")
	return postgres.NewCampaignRepository(pool), postgres.NewGroupService(pool), pool.Close, nil
}
