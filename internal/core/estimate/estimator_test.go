package estimate

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

var (
	intramuros = domain.GeoPoint{Lat: 14.5350, Lng: 120.9821}
	manilaCity = domain.GeoPoint{Lat: 14.5995, Lng: 120.9842}
)

func TestHaversineKnownDistance(t *testing.T) {
	// Intramuros to Manila City Hall area is roughly 7.2 km in a straight line.
	got := Haversine(intramuros, manilaCity)
	if got < 7.0 || got > 7.4 {
		t.Errorf("Haversine = %.3f km, want ~7.2 km", got)
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	if got := Haversine(intramuros, intramuros); got != 0 {
		t.Errorf("Haversine(p, p) = %v, want 0", got)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	ab := Haversine(intramuros, manilaCity)
	ba := Haversine(manilaCity, intramuros)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("asymmetric distance: %v vs %v", ab, ba)
	}
}

func TestEstimatorHaversineDuration(t *testing.T) {
	e := New(nil, 30, 0, zerolog.Nop())
	est := e.Haversine(domain.GeoPoint{Lat: 0, Lng: 0}, domain.GeoPoint{Lat: 0, Lng: 0})
	if est.DistanceKm != 0 || est.DurationMin != 0 {
		t.Errorf("zero-leg estimate = %+v", est)
	}

	est = e.Haversine(intramuros, manilaCity)
	wantMin := est.DistanceKm / 30 * 60
	if math.Abs(est.DurationMin-wantMin) > 1e-9 {
		t.Errorf("DurationMin = %v, want %v at 30 km/h", est.DurationMin, wantMin)
	}
}

type stubProvider struct {
	est   domain.RouteEstimate
	err   error
	calls int
}

func (p *stubProvider) Route(_ context.Context, _, _ domain.GeoPoint) (domain.RouteEstimate, error) {
	p.calls++
	return p.est, p.err
}

func TestEstimatorRouted(t *testing.T) {
	p := &stubProvider{est: domain.RouteEstimate{DistanceKm: 9.4, DurationMin: 22}}
	e := New(p, 30, time.Second, zerolog.Nop())

	est, err := e.Routed(context.Background(), intramuros, manilaCity)
	if err != nil {
		t.Fatalf("Routed: %v", err)
	}
	if est.DistanceKm != 9.4 || est.DurationMin != 22 {
		t.Errorf("Routed = %+v", est)
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, want 1", p.calls)
	}
}

func TestEstimatorRoutedFailure(t *testing.T) {
	p := &stubProvider{err: errors.New("quota exceeded")}
	e := New(p, 30, time.Second, zerolog.Nop())

	if _, err := e.Routed(context.Background(), intramuros, manilaCity); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestEstimatorRoutedWithoutProvider(t *testing.T) {
	e := New(nil, 30, time.Second, zerolog.Nop())
	if _, err := e.Routed(context.Background(), intramuros, manilaCity); err == nil {
		t.Fatal("expected error with nil provider")
	}
}

func TestFormatETA(t *testing.T) {
	cases := []struct {
		minutes float64
		want    string
	}{
		{30, "30 min"},
		{90, "1 hr 30 min"},
		{60, "1 hr"},
		{0, "0 min"},
		{59.6, "1 hr"},
		{125, "2 hr 5 min"},
		{1, "1 min"},
	}
	for _, tc := range cases {
		if got := FormatETA(tc.minutes); got != tc.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestFormatETAFromDistance(t *testing.T) {
	// The canonical UI cases: distance at 30 km/h.
	e := New(nil, 30, 0, zerolog.Nop())
	cases := []struct {
		km   float64
		want string
	}{
		{15, "30 min"},
		{45, "1 hr 30 min"},
		{30, "1 hr"},
	}
	for _, tc := range cases {
		est := e.Haversine(domain.GeoPoint{}, domain.GeoPoint{})
		est.DurationMin = tc.km / 30 * 60
		if got := FormatETA(est.DurationMin); got != tc.want {
			t.Errorf("ETA for %v km = %q, want %q", tc.km, got, tc.want)
		}
	}
}
