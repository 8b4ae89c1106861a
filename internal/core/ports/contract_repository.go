package ports

import (
	"context"
	"time"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

// ContractRepository defines persistence operations for delivery contracts.
type ContractRepository interface {
	Create(ctx context.Context, c *domain.DeliveryContract) error
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.DeliveryContract, error)
	// UpdateLocation sets the current courier position (WKT) and, when status is
	// non-empty, the contract status. The caller validates the transition.
	UpdateLocation(ctx context.Context, trackingNumber string, currentWKT string, status domain.ContractStatus, ts time.Time) error
}

// ContractFeed delivers no-payload change signals for a tracking number. A
// signal means "the record changed, re-fetch it"; it carries no body.
type ContractFeed interface {
	// Subscribe registers for change signals on one tracking number. The
	// returned stop function releases the subscription; it is safe to call more
	// than once. The channel is closed when the subscription ends.
	Subscribe(ctx context.Context, trackingNumber string) (<-chan struct{}, func(), error)
	// Publish emits a change signal for the tracking number.
	Publish(ctx context.Context, trackingNumber string) error
}
