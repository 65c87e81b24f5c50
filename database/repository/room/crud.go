package roomRepo

import (
	"context"
	"errors"
	"time"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no room matches the given ID.
var ErrNotFound = errors.New("room not found")

// GetByID returns a room by its ID.
func (r *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	err := r.rooms.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// ListByStore returns all rooms of a store.
func (r *mongoRoomRepo) ListByStore(ctx context.Context, storeID string) ([]models.Room, error) {
	cursor, err := r.rooms.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// SetStatus updates a room's inventory status.
func (r *mongoRoomRepo) SetStatus(ctx context.Context, roomID, status string) error {
	result, err := r.rooms.UpdateOne(ctx,
		bson.M{"id": roomID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
