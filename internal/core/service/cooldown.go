package service

import (
	"context"
	"sync"
	"time"
)

// MemoryGate is an in-process RouteGate: one cooldown window per key. Use it
// when routed-call throttling should be isolated to a single process or a
// single tracking session; the Redis-backed gate covers the shared scope.
type MemoryGate struct {
	window time.Duration

	mu   sync.Mutex
	last map[string]time.Time
}

// NewMemoryGate creates a gate enforcing the given window between routed calls
// for the same key.
func NewMemoryGate(window time.Duration) *MemoryGate {
	return &MemoryGate{window: window, last: make(map[string]time.Time)}
}

// Allow reports whether a routed call for key may be issued now, and if so
// starts a new cooldown window.
func (g *MemoryGate) Allow(_ context.Context, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if t, ok := g.last[key]; ok && now.Sub(t) < g.window {
		return false
	}
	g.last[key] = now
	return true
}
