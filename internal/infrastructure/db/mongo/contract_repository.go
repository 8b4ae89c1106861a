package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

const collectionContracts = "delivery_contracts"

type ContractRepository struct {
	col *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{col: db.Collection(collectionContracts)}
}

// Create inserts a new delivery contract document.
func (r *ContractRepository) Create(ctx context.Context, c *domain.DeliveryContract) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateContract
	}
	return err
}

// FindByTrackingNumber retrieves a contract by tracking number.
func (r *ContractRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.DeliveryContract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.DeliveryContract
	err := r.col.FindOne(ctx, bson.M{"tracking_number": trackingNumber}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, err
	}
	return &c, nil
}

// UpdateLocation sets the courier's current position (stored as WKT) and the
// contract status in a single update.
func (r *ContractRepository) UpdateLocation(ctx context.Context, trackingNumber string, currentWKT string, status domain.ContractStatus, ts time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"tracking_number": trackingNumber},
		bson.M{"$set": bson.M{
			"current_location_geo": currentWKT,
			"status":               status,
			"updated_at":           ts,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the contracts collection.
func (r *ContractRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tracking_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "airline_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
