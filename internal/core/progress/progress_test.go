package progress

import (
	"math"
	"testing"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/estimate"
)

var (
	pickup  = domain.GeoPoint{Lat: 14.5350, Lng: 120.9821}
	dropoff = domain.GeoPoint{Lat: 14.5995, Lng: 120.9842}
)

// haversineEst adapts the pure haversine to an EstimateFunc at 30 km/h.
func haversineEst(origin, destination domain.GeoPoint) (domain.RouteEstimate, bool) {
	km := estimate.Haversine(origin, destination)
	return domain.RouteEstimate{DistanceKm: km, DurationMin: km / 30 * 60}, true
}

func TestComputeAtPickup(t *testing.T) {
	cur := pickup
	snap := Compute(&pickup, &cur, &dropoff, haversineEst)
	if snap.Ratio > 1e-9 {
		t.Errorf("ratio at pickup = %v, want ~0", snap.Ratio)
	}
	if snap.RemainingKm == nil {
		t.Fatal("RemainingKm is nil")
	}
	total := estimate.Haversine(pickup, dropoff)
	if math.Abs(*snap.RemainingKm-total) > 1e-9 {
		t.Errorf("remaining = %v, want total %v", *snap.RemainingKm, total)
	}
}

func TestComputeAtDropoff(t *testing.T) {
	cur := dropoff
	snap := Compute(&pickup, &cur, &dropoff, haversineEst)
	if math.Abs(snap.Ratio-1) > 1e-9 {
		t.Errorf("ratio at drop-off = %v, want 1", snap.Ratio)
	}
	if snap.RemainingKm == nil || *snap.RemainingKm > 1e-9 {
		t.Errorf("remaining at drop-off = %v, want ~0", snap.RemainingKm)
	}
}

func TestComputeMonotonic(t *testing.T) {
	// Walk the current point from pickup toward drop-off; the ratio must never
	// decrease.
	prev := -1.0
	for i := 0; i <= 10; i++ {
		f := float64(i) / 10
		cur := domain.GeoPoint{
			Lat: pickup.Lat + (dropoff.Lat-pickup.Lat)*f,
			Lng: pickup.Lng + (dropoff.Lng-pickup.Lng)*f,
		}
		snap := Compute(&pickup, &cur, &dropoff, haversineEst)
		if snap.Ratio < prev {
			t.Fatalf("ratio decreased at step %d: %v < %v", i, snap.Ratio, prev)
		}
		prev = snap.Ratio
	}
}

func TestComputeClampsBelowZero(t *testing.T) {
	// Courier farther from the drop-off than the pickup was: clamp, don't go
	// negative.
	cur := domain.GeoPoint{Lat: 14.40, Lng: 120.90}
	snap := Compute(&pickup, &cur, &dropoff, haversineEst)
	if snap.Ratio != 0 {
		t.Errorf("ratio = %v, want clamped 0", snap.Ratio)
	}
}

func TestComputeZeroTotal(t *testing.T) {
	same := pickup
	snap := Compute(&pickup, nil, &same, haversineEst)
	if snap.Ratio != 0 {
		t.Errorf("ratio = %v, want 0 for zero-length journey", snap.Ratio)
	}
	if snap.RemainingKm != nil || snap.EtaMin != nil {
		t.Errorf("distances should be unavailable, got %+v", snap)
	}
}

func TestComputeMissingEndpoints(t *testing.T) {
	if snap := Compute(nil, nil, &dropoff, haversineEst); snap.Ratio != 0 || snap.RemainingKm != nil {
		t.Errorf("missing pickup: %+v", snap)
	}
	if snap := Compute(&pickup, nil, nil, haversineEst); snap.Ratio != 0 || snap.RemainingKm != nil {
		t.Errorf("missing drop-off: %+v", snap)
	}
}

func TestComputeNilCurrentFallsBackToPickup(t *testing.T) {
	snap := Compute(&pickup, nil, &dropoff, haversineEst)
	if snap.Ratio > 1e-9 {
		t.Errorf("ratio with no live position = %v, want 0", snap.Ratio)
	}
	if snap.RemainingKm == nil {
		t.Fatal("RemainingKm is nil; pickup fallback did not apply")
	}
}

func TestComputeEstimateUnavailable(t *testing.T) {
	failing := func(_, _ domain.GeoPoint) (domain.RouteEstimate, bool) {
		return domain.RouteEstimate{}, false
	}
	snap := Compute(&pickup, nil, &dropoff, failing)
	if snap.Ratio != 0 || snap.RemainingKm != nil || snap.EtaMin != nil {
		t.Errorf("unavailable estimate: %+v", snap)
	}
}
