package routing

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

var (
	origin      = domain.GeoPoint{Lat: 14.5350, Lng: 120.9821}
	destination = domain.GeoPoint{Lat: 14.5995, Lng: 120.9842}
)

func TestRouteParsesDistanceAndDuration(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":9400.0,"duration":1320.0}]}`))
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL, time.Second, zerolog.Nop())
	est, err := c.Route(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if math.Abs(est.DistanceKm-9.4) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 9.4", est.DistanceKm)
	}
	if math.Abs(est.DurationMin-22) > 1e-9 {
		t.Errorf("DurationMin = %v, want 22", est.DurationMin)
	}

	// Longitude first, and numbers-only mode.
	if !strings.Contains(gotPath, "120.982100,14.535000;120.984200,14.599500") {
		t.Errorf("request path %q does not carry lon-lat ordered coordinates", gotPath)
	}
	if !strings.Contains(gotPath, "overview=false") {
		t.Errorf("request path %q should request no route geometry", gotPath)
	}
}

func TestRouteNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.Route(context.Background(), origin, destination); err == nil {
		t.Fatal("expected error for NoRoute response")
	}
}

func TestRouteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.Route(context.Background(), origin, destination); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestRouteTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewOSRMClient(srv.URL, 50*time.Millisecond, zerolog.Nop())
	start := time.Now()
	_, err := c.Route(context.Background(), origin, destination)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > time.Second {
		t.Errorf("timeout took %v, want bounded by client timeout", time.Since(start))
	}
}

func TestRouteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.Route(context.Background(), origin, destination); err == nil {
		t.Fatal("expected decode error")
	}
}
