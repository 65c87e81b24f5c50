package reservationRepo

import (
	"context"
	"time"

	"frontdesk/database"
	"frontdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the persistence contract the lifecycle engine
// depends on. Save is a full-document replace; the caller serializes
// mutations per reservation, so last-writer-wins is acceptable.
type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	Save(ctx context.Context, r *models.Reservation) error
	AppendTransaction(ctx context.Context, reservationID string, txn models.Transaction) error
	ListByStore(ctx context.Context, storeID, status string) ([]models.Reservation, error)
	ListArrivalsOn(ctx context.Context, storeID string, day time.Time) ([]models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a ReservationRepository backed by MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database("frontdesk")
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
