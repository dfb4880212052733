package main

import (
	"career-globe-service/internal/adapters/repositories"
	"career-globe-service/internal/config"
	"career-globe-service/internal/platform/db"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

// dbtool creates the schema and loads the milestone seed into the configured
// database without starting the server.
func main() {
	seedOnly := flag.Bool("seed-only", false, "skip schema creation")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, *seedOnly); err != nil {
		slog.Error("dbtool failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, seedOnly bool) error {
	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)
	if cfg.DBDriver == "postgres" {
		conn, err = db.Open(cfg.DatabaseURL)
		dialect = repositories.Postgres
	} else {
		conn, err = db.OpenSQLite(cfg.DBPath)
		dialect = repositories.SQLite
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	if !seedOnly {
		slog.Info("initializing database schema", "driver", cfg.DBDriver)
		if err := repositories.InitSchema(conn, dialect); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		slog.Info("schema ready")
	}

	slog.Info("seeding database", "seed", cfg.SeedPath)
	if err := repositories.SeedFromJSON(ctx, conn, dialect, cfg.SeedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	slog.Info("seeding complete")

	return nil
}
