package domain

import (
	"errors"
	"time"
)

// ContractStatus represents the lifecycle state of a delivery contract.
type ContractStatus string

const (
	StatusPending   ContractStatus = "pending"
	StatusAccepted  ContractStatus = "accepted"
	StatusInTransit ContractStatus = "in_transit"
	StatusDelivered ContractStatus = "delivered"
	StatusCancelled ContractStatus = "cancelled"
	StatusFailed    ContractStatus = "failed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[ContractStatus][]ContractStatus{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusFailed},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrContractNotFound = errors.New("contract not found")
var ErrDuplicateContract = errors.New("contract already exists")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the known contract statuses.
func (s ContractStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInTransit, StatusDelivered, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// DeliveryContract is the core aggregate root: one piece of luggage handed to a
// courier for delivery. The three geometry fields hold raw geometry as the store
// returns it (WKT string or GeoJSON document) and are parsed lazily, since any of
// them may be absent or malformed.
type DeliveryContract struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	TrackingNumber string         `json:"tracking_number" bson:"tracking_number"`
	AirlineID      string         `json:"airline_id" bson:"airline_id"`
	PassengerName  string         `json:"passenger_name" bson:"passenger_name"`
	PickupGeo      any            `json:"pickup_location_geo" bson:"pickup_location_geo"`
	CurrentGeo     any            `json:"current_location_geo" bson:"current_location_geo"`
	DropoffGeo     any            `json:"drop_off_location_geo" bson:"drop_off_location_geo"`
	Status         ContractStatus `json:"status" bson:"status"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// PickupPoint parses the pickup geometry. Nil when absent or malformed.
func (c *DeliveryContract) PickupPoint() *GeoPoint { return ParseGeometry(c.PickupGeo) }

// CurrentPoint parses the last reported courier position. Nil when absent or malformed.
func (c *DeliveryContract) CurrentPoint() *GeoPoint { return ParseGeometry(c.CurrentGeo) }

// DropoffPoint parses the drop-off geometry. Nil when absent or malformed.
func (c *DeliveryContract) DropoffPoint() *GeoPoint { return ParseGeometry(c.DropoffGeo) }

// RouteEstimate holds distance and travel duration between two points. It is
// consumed transiently and never persisted.
type RouteEstimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

// ProgressSnapshot is the computed completion state for one tracking session.
// RemainingKm and EtaMin are nil when they cannot be computed (missing geometry,
// zero-length journey), which is distinct from a zero remaining distance.
type ProgressSnapshot struct {
	RemainingKm *float64 `json:"remaining_km"`
	EtaMin      *float64 `json:"eta_min"`
	Ratio       float64  `json:"ratio"`
}
