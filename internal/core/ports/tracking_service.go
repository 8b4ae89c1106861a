package ports

import (
	"context"
	"time"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

// CreateContractInput carries all data needed to register a new delivery contract.
type CreateContractInput struct {
	AirlineID     string
	PassengerName string
	Pickup        domain.GeoPoint
	Dropoff       domain.GeoPoint
}

// ContractResult is returned by the service after creating a contract.
type ContractResult struct {
	TrackingNumber string
	Status         string
	CreatedAt      time.Time
}

// LocationUpdateInput carries a courier position report. Status is optional;
// when set it drives the contract state machine.
type LocationUpdateInput struct {
	TrackingNumber string
	Position       domain.GeoPoint
	Status         string
	Timestamp      time.Time
}

// ContractService defines use-case operations on delivery contracts.
type ContractService interface {
	CreateContract(ctx context.Context, input CreateContractInput) (*ContractResult, error)
	UpdateLocation(ctx context.Context, input LocationUpdateInput) error
}

// Estimate source labels reported in progress results.
const (
	EstimateSourceRouted    = "routed"
	EstimateSourceCached    = "cached"
	EstimateSourceHaversine = "haversine"
)

// ProgressResult is the full tracking view computed for one refresh cycle.
type ProgressResult struct {
	TrackingNumber string
	Status         string
	Progress       domain.ProgressSnapshot
	// Estimate is the remaining-leg estimate (current position to drop-off),
	// nil when geometry is unavailable.
	Estimate *domain.RouteEstimate
	// ETA is the human-readable remaining travel time ("1 hr 30 min"), empty
	// when no estimate exists.
	ETA string
	// EstimateSource records how the estimate was obtained: routed, cached
	// (cooldown suppressed or provider failed), or haversine.
	EstimateSource string
}

// ProgressService computes tracking snapshots.
type ProgressService interface {
	Snapshot(ctx context.Context, trackingNumber string, routed bool) (*ProgressResult, error)
}
