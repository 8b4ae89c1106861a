package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Routing  RoutingConfig
	Tracking TrackingConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=luggage_tracking"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RoutingConfig points at an OSRM-compatible directions API.
type RoutingConfig struct {
	BaseURL string        `env:"OSRM_URL,     default=https://router.project-osrm.org"`
	Timeout time.Duration `env:"OSRM_TIMEOUT, default=5s"`
}

// TrackingConfig tunes the refresh coordinator.
type TrackingConfig struct {
	// Debounce is the quiet period before an identifier commits to a fetch.
	Debounce time.Duration `env:"TRACK_DEBOUNCE, default=500ms"`
	// Cooldown is the minimum interval between routed-provider calls per
	// tracking number.
	Cooldown time.Duration `env:"TRACK_COOLDOWN, default=60s"`
	// AvgSpeedKmh feeds ETA derivation for haversine estimates.
	AvgSpeedKmh float64 `env:"TRACK_AVG_SPEED_KMH, default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
