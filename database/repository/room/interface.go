package roomRepo

import (
	"context"
	"log"

	"frontdesk/database"
	"frontdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository is the data-access contract for room inventory.
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*models.Room, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Room, error)
	ListBookedRoomIDs(ctx context.Context, storeID string, period models.StayPeriod, excludeReservationID string) ([]string, error)
	SetStatus(ctx context.Context, roomID, status string) error
}

type mongoRoomRepo struct {
	rooms        *mongo.Collection
	reservations *mongo.Collection
}

// NewMongoRoomRepo returns a RoomRepository backed by MongoDB.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database("frontdesk")
	repo := &mongoRoomRepo{
		rooms:        db.Collection("rooms"),
		reservations: db.Collection("reservations"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("room repo: failed to ensure indexes: %v", err)
	}
	return repo
}
