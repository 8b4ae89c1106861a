// Package estimate computes distance and travel time between geographic points,
// either as great-circle (haversine) approximations or by delegating to an
// external routing provider.
package estimate

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
)

const earthRadiusKm = 6371.0

const (
	defaultSpeedKmh = 30.0
	defaultTimeout  = 5 * time.Second
)

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(a, b domain.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Estimator produces RouteEstimates. Haversine mode is pure computation; routed
// mode delegates to the provider under a bounded per-call timeout so a stalled
// provider degrades instead of hanging the caller.
type Estimator struct {
	provider ports.RouteProvider
	speedKmh float64
	timeout  time.Duration
	log      zerolog.Logger
}

// New builds an Estimator. provider may be nil, in which case Routed always
// fails and callers fall back to haversine. speedKmh <= 0 selects the default
// average courier speed of 30 km/h.
func New(provider ports.RouteProvider, speedKmh float64, timeout time.Duration, log zerolog.Logger) *Estimator {
	if speedKmh <= 0 {
		speedKmh = defaultSpeedKmh
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Estimator{provider: provider, speedKmh: speedKmh, timeout: timeout, log: log}
}

// Haversine estimates straight-line distance with a duration derived from the
// configured average speed.
func (e *Estimator) Haversine(origin, destination domain.GeoPoint) domain.RouteEstimate {
	km := Haversine(origin, destination)
	return domain.RouteEstimate{
		DistanceKm:  km,
		DurationMin: km / e.speedKmh * 60,
	}
}

// Routed queries the routing provider for road distance and duration.
func (e *Estimator) Routed(ctx context.Context, origin, destination domain.GeoPoint) (domain.RouteEstimate, error) {
	if e.provider == nil {
		return domain.RouteEstimate{}, fmt.Errorf("routed estimate: no provider configured")
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	est, err := e.provider.Route(ctx, origin, destination)
	if err != nil {
		e.log.Warn().Err(err).Msg("routing provider call failed")
		return domain.RouteEstimate{}, fmt.Errorf("routed estimate: %w", err)
	}
	return est, nil
}

// FormatETA renders a minute count the way the tracking UI expects:
// "1 hr 30 min", "1 hr", "30 min". A zero hour omits the "hr" part and a zero
// minute remainder omits the "min" part.
func FormatETA(minutes float64) string {
	total := int(math.Round(minutes))
	if total <= 0 {
		return "0 min"
	}
	hr := total / 60
	min := total % 60
	switch {
	case hr > 0 && min > 0:
		return fmt.Sprintf("%d hr %d min", hr, min)
	case hr > 0:
		return fmt.Sprintf("%d hr", hr)
	default:
		return fmt.Sprintf("%d min", min)
	}
}
