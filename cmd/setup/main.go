package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/osse101/Pickem_Go/internal/bootstrap"
	"github.com/osse101/Pickem_Go/internal/config"
	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/database"
	"github.com/osse101/Pickem_Go/internal/database/postgres"
	"github.com/osse101/Pickem_Go/internal/logger"
	"github.com/osse101/Pickem_Go/internal/validation"
)

// setup creates the database if needed, applies migrations and optionally
// imports the event cards found in EVENT_CARD_DIR.
func main() {
	importCards := flag.Bool("import-cards", false, "import event card files after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(bootstrap.LoggerConfig(cfg))

	ctx := context.Background()

	created, err := database.EnsureDatabase(ctx, cfg.GetAdminConnString(), cfg.DBName)
	if err != nil {
		slog.Error("Failed to ensure database", "error", err, "db_name", cfg.DBName)
		os.Exit(1)
	}
	if created {
		slog.Info("Database created", "db_name", cfg.DBName)
	} else {
		slog.Info("Database already exists", "db_name", cfg.DBName)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Migrations applied", "version", version)

	if !*importCards {
		return
	}

	svc := contest.NewService(postgres.NewContestRepository(pool), nil, validation.NewSchemaValidator(), contest.Options{
		BasePoints: cfg.DefaultBasePoints,
	})
	n, err := bootstrap.ImportEventCards(ctx, svc, cfg.EventCardDir)
	if err != nil {
		slog.Error("Event card import failed", "error", err, "dir", cfg.EventCardDir)
		os.Exit(1)
	}
	slog.Info("Setup complete", "cards_imported", n)
}
