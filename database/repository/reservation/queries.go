package reservationRepo

import (
	"context"
	"errors"
	"time"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no reservation matches the given ID.
var ErrNotFound = errors.New("reservation not found")

// ListByStore returns a store's reservations, optionally filtered by status,
// newest first.
func (r *mongoReservationRepo) ListByStore(ctx context.Context, storeID, status string) ([]models.Reservation, error) {
	filter := bson.M{"store_id": storeID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListArrivalsOn returns reservations whose stay begins on the given day and
// that have not yet arrived. Used by the no-show sweep.
func (r *mongoReservationRepo) ListArrivalsOn(ctx context.Context, storeID string, day time.Time) ([]models.Reservation, error) {
	y, m, d := day.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, day.Location())

	filter := bson.M{
		"status":          bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed}},
		"period.check_in": bson.M{"$gte": dayStart, "$lt": dayStart.AddDate(0, 0, 1)},
	}
	if storeID != "" {
		filter["store_id"] = storeID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
