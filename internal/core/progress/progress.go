// Package progress derives a normalized journey completion ratio from pickup,
// current, and drop-off positions. Compute is a pure function; all caching and
// rate-limiting of the underlying estimates lives with the caller.
package progress

import (
	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

// EstimateFunc returns the distance/duration estimate between two points. ok is
// false when no estimate could be obtained.
type EstimateFunc func(origin, destination domain.GeoPoint) (domain.RouteEstimate, bool)

// Compute derives the completion snapshot for a journey.
//
// Total distance runs pickup to drop-off; remaining runs from the current
// position (or pickup, when no live position exists yet) to drop-off. The ratio
// is 1 - remaining/total, clamped to [0, 1]. A missing endpoint or zero total
// yields ratio 0 with remaining/ETA unavailable (nil), keeping "not computable"
// distinct from "zero remaining".
func Compute(pickup, current, dropoff *domain.GeoPoint, est EstimateFunc) domain.ProgressSnapshot {
	if pickup == nil || dropoff == nil {
		return domain.ProgressSnapshot{}
	}

	total, ok := est(*pickup, *dropoff)
	if !ok || total.DistanceKm <= 0 {
		return domain.ProgressSnapshot{}
	}

	ref := current
	if ref == nil {
		ref = pickup
	}
	remaining, ok := est(*ref, *dropoff)
	if !ok {
		return domain.ProgressSnapshot{}
	}

	ratio := clamp((total.DistanceKm - remaining.DistanceKm) / total.DistanceKm)

	rkm := remaining.DistanceKm
	eta := remaining.DurationMin
	return domain.ProgressSnapshot{
		RemainingKm: &rkm,
		EtaMin:      &eta,
		Ratio:       ratio,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
