package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CooldownGate is a Redis-backed RouteGate. One SetNX'd key per tracking number
// throttles routed-provider calls across every process and session tracking
// that contract, so total provider call volume stays bounded.
// Key format: route_cooldown:<tracking_number>
type CooldownGate struct {
	client *redis.Client
	window time.Duration
	log    zerolog.Logger
}

// NewCooldownGate creates a gate enforcing the given window between routed
// calls per tracking number.
func NewCooldownGate(client *redis.Client, window time.Duration, log zerolog.Logger) *CooldownGate {
	return &CooldownGate{client: client, window: window, log: log}
}

// Allow reports whether a routed call for key may be issued now. A Redis
// failure fails open: one extra provider call beats a tracking outage.
func (g *CooldownGate) Allow(ctx context.Context, key string) bool {
	ok, err := g.client.SetNX(ctx, "route_cooldown:"+key, "1", g.window).Result()
	if err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("cooldown check failed, allowing call")
		return true
	}
	return ok
}
