package main

import (
	"career-globe-service/internal/adapters/cache"
	"career-globe-service/internal/adapters/repositories"
	"career-globe-service/internal/api"
	"career-globe-service/internal/config"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/platform/db"
	"career-globe-service/internal/platform/logging"
	"career-globe-service/internal/platform/metrics"
	"career-globe-service/internal/ports"
	"career-globe-service/internal/services"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logCloser := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logCloser.Close()
	slog.SetDefault(logger)

	proj, err := geo.NewProjector(geo.Config{Radius: cfg.GlobeRadius, CameraDistance: cfg.CameraDistance})
	if err != nil {
		return err
	}

	conn, dialect, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize schema and seed data on startup for local runs.
	if err := initAndSeed(ctx, conn, dialect, cfg.SeedPath); err != nil {
		return err
	}

	m := metrics.New()

	legCache, closeCache, err := newLegCache(ctx, cfg, conn, dialect, m)
	if err != nil {
		return err
	}
	defer closeCache()

	repo := repositories.NewSQLMilestoneRepository(conn, dialect)

	router := api.NewRouter(api.Deps{
		Repo:       repo,
		Sections:   repo,
		Cache:      legCache,
		Projector:  proj,
		Difficulty: services.DefaultDifficulty,
		Metrics:    m,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server listening", "addr", srv.Addr, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openDB(cfg config.Config) (*sql.DB, repositories.Dialect, error) {
	if cfg.DBDriver == "postgres" {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, repositories.Postgres, err
	}
	conn, err := db.OpenSQLite(cfg.DBPath)
	return conn, repositories.SQLite, err
}

// newLegCache prefers Redis when configured and falls back to the SQL database.
func newLegCache(
	ctx context.Context,
	cfg config.Config,
	conn *sql.DB,
	dialect repositories.Dialect,
	m *metrics.Metrics,
) (ports.LegCache, func(), error) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping %q: %w", cfg.RedisAddr, err)
		}
		return cache.NewInstrumented(cache.NewRedisLegCache(client), "redis", m), func() { client.Close() }, nil
	}

	if dialect == repositories.Postgres {
		return cache.NewInstrumented(cache.NewSQLLegCache(conn), "postgres", m), func() {}, nil
	}
	return cache.NewInstrumented(cache.NewSqliteLegCache(conn), "sqlite", m), func() {}, nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
