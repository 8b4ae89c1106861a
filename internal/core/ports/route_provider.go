package ports

import (
	"context"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

// RouteProvider returns road-network distance and duration between two points.
// Implementations query an external directions API in its numbers-only mode (no
// geometry requested), so a call is a pure distance/duration lookup.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination domain.GeoPoint) (domain.RouteEstimate, error)
}

// RouteGate rate-limits routed estimations. Allow reports whether a routed call
// may be issued for key now; when denied, the caller reuses the last-known
// estimate instead of contacting the provider. Sharing scope is decided by the
// caller: a Redis-backed gate throttles provider volume across all sessions,
// an in-memory gate throttles one session in isolation.
type RouteGate interface {
	Allow(ctx context.Context, key string) bool
}
