package room

import (
	"context"

	roomRepo "frontdesk/database/repository/room"
	"frontdesk/models"
)

// InventoryService is the room/inventory collaborator. The lifecycle engine
// never decides availability itself; it asks this service and signals room
// status changes after check-in and checkout.
type InventoryService interface {
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	QueryAvailability(ctx context.Context, storeID string, period models.StayPeriod, excludeReservationID string) ([]models.Room, error)
	IsRoomAvailable(ctx context.Context, roomID, storeID string, period models.StayPeriod, excludeReservationID string) (bool, error)
	SetRoomStatus(ctx context.Context, roomID, status string) error
}

// DefaultInventoryService implements InventoryService over the room
// repository with a short-lived Redis cache on availability scans.
type DefaultInventoryService struct {
	Repo roomRepo.RoomRepository
}
