package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/api/metrics"
	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/estimate"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
	"github.com/skyporter/luggage-tracking/internal/core/progress"
)

type progressService struct {
	repo ports.ContractRepository
	est  *estimate.Estimator
	gate ports.RouteGate
	log  zerolog.Logger

	// last-known routed estimates, reused while the cooldown suppresses new
	// provider calls or when the provider fails.
	mu   sync.Mutex
	last map[string]domain.RouteEstimate
}

// NewProgressService returns a ProgressService implementation. The gate decides
// whether a routed provider call is permitted; its sharing scope (per-process
// or Redis-wide) is the caller's choice.
func NewProgressService(
	repo ports.ContractRepository,
	est *estimate.Estimator,
	gate ports.RouteGate,
	log zerolog.Logger,
) ports.ProgressService {
	return &progressService{
		repo: repo,
		est:  est,
		gate: gate,
		log:  log,
		last: make(map[string]domain.RouteEstimate),
	}
}

// Snapshot fetches the contract and computes its progress view. Only in-transit
// contracts trigger route estimation; delivered contracts pin progress to 1 and
// every other status reports an empty snapshot.
func (s *progressService) Snapshot(ctx context.Context, trackingNumber string, routed bool) (*ports.ProgressResult, error) {
	c, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		metrics.ContractFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	metrics.ContractFetchesTotal.WithLabelValues("ok").Inc()

	res := &ports.ProgressResult{
		TrackingNumber: c.TrackingNumber,
		Status:         string(c.Status),
	}

	switch c.Status {
	case domain.StatusInTransit:
		// fall through to active computation
	case domain.StatusDelivered:
		zero := 0.0
		eta := 0.0
		res.Progress = domain.ProgressSnapshot{RemainingKm: &zero, EtaMin: &eta, Ratio: 1}
		return res, nil
	default:
		return res, nil
	}

	pickup := c.PickupPoint()
	cur := c.CurrentPoint()
	drop := c.DropoffPoint()
	if pickup == nil {
		s.log.Debug().Str("tracking", trackingNumber).Msg("pickup geometry unavailable")
	}

	ref := cur
	if ref == nil {
		ref = pickup
	}

	source := ports.EstimateSourceHaversine
	var remaining *domain.RouteEstimate
	if routed && ref != nil && drop != nil {
		remaining, source = s.routedRemaining(ctx, trackingNumber, *ref, *drop)
	}

	estFn := func(origin, destination domain.GeoPoint) (domain.RouteEstimate, bool) {
		if remaining != nil && ref != nil && origin == *ref && destination == *drop {
			return *remaining, true
		}
		return s.est.Haversine(origin, destination), true
	}

	res.Progress = progress.Compute(pickup, cur, drop, estFn)
	if res.Progress.RemainingKm != nil {
		res.Estimate = &domain.RouteEstimate{
			DistanceKm:  *res.Progress.RemainingKm,
			DurationMin: *res.Progress.EtaMin,
		}
		res.ETA = estimate.FormatETA(*res.Progress.EtaMin)
		res.EstimateSource = source
	}
	return res, nil
}

// routedRemaining obtains the remaining-leg estimate from the routing provider,
// subject to the cooldown gate. Suppressed or failed calls fall back to the
// last-known estimate; with no last-known value, nil is returned and the caller
// degrades to haversine.
func (s *progressService) routedRemaining(ctx context.Context, trackingNumber string, origin, destination domain.GeoPoint) (*domain.RouteEstimate, string) {
	if !s.gate.Allow(ctx, trackingNumber) {
		metrics.RouteCooldownSuppressedTotal.Inc()
		if cached, ok := s.lastKnown(trackingNumber); ok {
			return &cached, ports.EstimateSourceCached
		}
		return nil, ports.EstimateSourceHaversine
	}

	est, err := s.est.Routed(ctx, origin, destination)
	if err != nil {
		metrics.RouteProviderCallsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("tracking", trackingNumber).Msg("routed estimate failed, degrading")
		if cached, ok := s.lastKnown(trackingNumber); ok {
			return &cached, ports.EstimateSourceCached
		}
		return nil, ports.EstimateSourceHaversine
	}
	metrics.RouteProviderCallsTotal.WithLabelValues("ok").Inc()

	s.mu.Lock()
	s.last[trackingNumber] = est
	s.mu.Unlock()
	return &est, ports.EstimateSourceRouted
}

func (s *progressService) lastKnown(trackingNumber string) (domain.RouteEstimate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	est, ok := s.last[trackingNumber]
	return est, ok
}
