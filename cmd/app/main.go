// @title Pick'em API
// @version 1.0
// @description Odds conversion, match points and Pick 6 scoring for wrestling and MMA pick'em contests.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/Pickem_Go/internal/bootstrap"
	"github.com/osse101/Pickem_Go/internal/config"
	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/database"
	"github.com/osse101/Pickem_Go/internal/database/postgres"
	"github.com/osse101/Pickem_Go/internal/server"
	"github.com/osse101/Pickem_Go/internal/validation"
)

// ShutdownTimeout bounds how long in-flight requests may drain
const ShutdownTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	version, err := database.Migrate(ctx, dbPool)
	if err != nil {
		slog.Error("Failed to migrate database", "error", err)
		dbPool.Close()
		os.Exit(1)
	}
	slog.Info("Database schema ready", "version", version)

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	contestService := contest.NewService(
		postgres.NewContestRepository(dbPool),
		bus,
		validation.NewSchemaValidator(),
		contest.Options{
			BasePoints: cfg.DefaultBasePoints,
			CacheSize:  cfg.PotentialCacheSize,
			CacheTTL:   cfg.PotentialCacheTTL,
		},
	)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		BasePoints:     cfg.DefaultBasePoints,
	}, dbPool, contestService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
