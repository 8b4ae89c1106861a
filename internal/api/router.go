package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skyporter/luggage-tracking/docs"
	"github.com/skyporter/luggage-tracking/internal/api/handler"
	"github.com/skyporter/luggage-tracking/internal/core/estimate"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
	"github.com/skyporter/luggage-tracking/internal/core/service"
	"github.com/skyporter/luggage-tracking/internal/infrastructure/config"
	mongodb "github.com/skyporter/luggage-tracking/internal/infrastructure/db/mongo"
	redisdb "github.com/skyporter/luggage-tracking/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The routed-estimation cooldown is Redis-backed, so provider call volume is
// throttled across every process tracking the same contract.
func NewRouter(db *mongo.Database, rdb *redis.Client, provider ports.RouteProvider, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("luggage"))

	// --- Dependencies ---
	repo := mongodb.NewContractRepository(db)
	feed := redisdb.NewContractFeed(rdb, log)
	gate := redisdb.NewCooldownGate(rdb, cfg.Tracking.Cooldown, log)
	estimator := estimate.New(provider, cfg.Tracking.AvgSpeedKmh, cfg.Routing.Timeout, log)

	progressService := service.NewProgressService(repo, estimator, gate, log)
	contractService := service.NewContractService(repo, feed, log)

	contractHandler := handler.NewContractHandler(contractService)
	progressHandler := handler.NewProgressHandler(progressService)
	liveHandler := handler.NewLiveHandler(progressService, feed, service.TrackerConfig{
		Debounce: cfg.Tracking.Debounce,
		Routed:   true,
	}, log)

	// --- Contract routes ---
	e.POST("/v1/contracts", contractHandler.Create)
	e.PUT("/v1/contracts/:tracking_number/location", contractHandler.UpdateLocation)

	// --- Tracking routes ---
	e.GET("/v1/contracts/:tracking_number/progress", progressHandler.Get)
	e.GET("/v1/contracts/:tracking_number/live", liveHandler.Stream)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
