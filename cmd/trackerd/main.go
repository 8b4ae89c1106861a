// Command trackerd serves the luggage delivery tracking API: contract
// registration, courier location updates, and one-shot or live progress
// computation against the contracts store and an OSRM routing provider.
//
// @title        Luggage Tracking API
// @version      1.0
// @description  Delivery contract tracking with progress and ETA computation.
// @BasePath     /
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyporter/luggage-tracking/internal/api"
	"github.com/skyporter/luggage-tracking/internal/infrastructure/config"
	mongodb "github.com/skyporter/luggage-tracking/internal/infrastructure/db/mongo"
	redisdb "github.com/skyporter/luggage-tracking/internal/infrastructure/db/redis"
	"github.com/skyporter/luggage-tracking/internal/infrastructure/routing"
	"github.com/skyporter/luggage-tracking/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewContractRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure contract indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	provider := routing.NewOSRMClient(cfg.Routing.BaseURL, cfg.Routing.Timeout, log)

	e := api.NewRouter(db, rdb, provider, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("trackerd listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
