// Package metrics defines and registers all custom Prometheus metrics for the
// luggage tracking service. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "luggage"

// ── Routing provider metrics ──────────────────────────────────────────────────

// RouteProviderCallsTotal counts routed-estimation calls to the directions
// provider.
// Label:
//   - result: "ok" or "error"
var RouteProviderCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_provider_calls_total",
		Help:      "Total number of routing provider calls, by result.",
	},
	[]string{"result"},
)

// RouteCooldownSuppressedTotal counts routed-estimation requests suppressed by
// the cooldown gate (the last-known estimate was reused).
var RouteCooldownSuppressedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_cooldown_suppressed_total",
		Help:      "Total number of routed estimation requests suppressed by the cooldown window.",
	},
)

// ── Tracking metrics ──────────────────────────────────────────────────────────

// ContractFetchesTotal counts contract lookups performed for progress snapshots.
// Label:
//   - result: "ok" or "error"
var ContractFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contract_fetches_total",
		Help:      "Total number of contract fetches for progress computation, by result.",
	},
	[]string{"result"},
)

// LiveSessionsActive tracks the number of websocket tracking sessions currently
// open.
var LiveSessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_sessions_active",
		Help:      "Current number of open live tracking sessions.",
	},
)
