package guestRepo

import (
	"context"
	"errors"
	"time"

	"frontdesk/database"
	"frontdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no guest matches the given ID.
var ErrNotFound = errors.New("guest not found")

// GuestRepository is the data-access contract for guest records. Guest
// management proper lives elsewhere; the engine only needs lookups and
// snapshots.
type GuestRepository interface {
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	Create(ctx context.Context, g *models.Guest) error
}

type mongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo returns a GuestRepository backed by MongoDB.
func NewMongoGuestRepo() GuestRepository {
	db := database.MongoClient.Database("frontdesk")
	return &mongoGuestRepo{
		coll: db.Collection("guests"),
	}
}

func (r *mongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	var guest models.Guest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (r *mongoGuestRepo) Create(ctx context.Context, g *models.Guest) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now()
	g.UpdatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, g)
	return err
}
