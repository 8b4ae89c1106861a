package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
)

type contractService struct {
	repo ports.ContractRepository
	feed ports.ContractFeed
	log  zerolog.Logger
}

// NewContractService returns a ContractService implementation.
func NewContractService(repo ports.ContractRepository, feed ports.ContractFeed, log zerolog.Logger) ports.ContractService {
	return &contractService{repo: repo, feed: feed, log: log}
}

// CreateContract registers a new delivery contract in pending status.
func (s *contractService) CreateContract(ctx context.Context, input ports.CreateContractInput) (*ports.ContractResult, error) {
	now := time.Now().UTC()
	c := &domain.DeliveryContract{
		TrackingNumber: generateTrackingNumber(),
		AirlineID:      input.AirlineID,
		PassengerName:  input.PassengerName,
		PickupGeo:      input.Pickup.WKT(),
		DropoffGeo:     input.Dropoff.WKT(),
		Status:         domain.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Msg("failed to create contract")
		return nil, err
	}

	s.log.Info().Str("tracking_number", c.TrackingNumber).Str("airline_id", input.AirlineID).Msg("contract created")

	return &ports.ContractResult{
		TrackingNumber: c.TrackingNumber,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
	}, nil
}

// UpdateLocation persists a courier position report, optionally advancing the
// contract status, and publishes a change signal for live trackers.
func (s *contractService) UpdateLocation(ctx context.Context, input ports.LocationUpdateInput) error {
	c, err := s.repo.FindByTrackingNumber(ctx, input.TrackingNumber)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	status := c.Status
	if input.Status != "" {
		next := domain.ContractStatus(input.Status)
		if !c.Status.CanTransitionTo(next) {
			return fmt.Errorf("update location: %w (from %s to %s)", domain.ErrInvalidTransition, c.Status, next)
		}
		status = next
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	if err := s.repo.UpdateLocation(ctx, input.TrackingNumber, input.Position.WKT(), status, ts); err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	// Change signal is best-effort; trackers also refresh on demand.
	if err := s.feed.Publish(ctx, input.TrackingNumber); err != nil {
		s.log.Warn().Err(err).Str("tracking", input.TrackingNumber).Msg("failed to publish change signal")
	}

	s.log.Info().
		Str("tracking", input.TrackingNumber).
		Str("status", string(status)).
		Msg("location updated")

	return nil
}

// generateTrackingNumber returns a unique tracking number in the format LG-XXXXXXXX.
func generateTrackingNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("LG-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("LG-%08X", b)
}
