package reservationRepo

import (
	"context"
	"time"

	"frontdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new reservation, minting an ID if none is set.
func (r *mongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.CreatedAt = time.Now()
	res.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, res)
	return err
}

// GetByID returns a reservation by its ID.
func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// Save replaces the stored document with the given aggregate.
func (r *mongoReservationRepo) Save(ctx context.Context, res *models.Reservation) error {
	res.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": res.ID}, res)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendTransaction pushes a folio transaction onto the stored document
// without touching the rest of the aggregate.
func (r *mongoReservationRepo) AppendTransaction(ctx context.Context, reservationID string, txn models.Transaction) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": reservationID},
		bson.M{
			"$push": bson.M{"payment.transactions": txn},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
