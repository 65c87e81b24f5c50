package room

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// availabilityTTL keeps cached scans short-lived; any reservation mutation
// invalidates the store's entries.
const availabilityTTL = 2 * time.Minute

// GetRoom returns a single room record.
func (s *DefaultInventoryService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return s.Repo.GetByID(ctx, id)
}

// QueryAvailability returns the rooms of a store that are free for the whole
// period. Rooms under maintenance never qualify. An in-flight mutation can
// exclude its own reservation so a date move does not collide with itself.
func (s *DefaultInventoryService) QueryAvailability(ctx context.Context, storeID string, period models.StayPeriod, excludeReservationID string) ([]models.Room, error) {
	cacheKey := availabilityKey(storeID, period, excludeReservationID)
	cacheClient := utils.GetCacheClient()

	if cached, err := cacheClient.Get(ctx, cacheKey).Result(); err == nil {
		var rooms []models.Room
		if err := json.Unmarshal([]byte(cached), &rooms); err == nil {
			return rooms, nil
		}
	}

	rooms, err := s.Repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	bookedIDs, err := s.Repo.ListBookedRoomIDs(ctx, storeID, period, excludeReservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}
	booked := make(map[string]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	var available []models.Room
	for _, room := range rooms {
		if room.Status == models.RoomMaintenance || booked[room.ID] {
			continue
		}
		available = append(available, room)
	}

	if data, err := json.Marshal(available); err == nil {
		if err := cacheClient.Set(ctx, cacheKey, data, availabilityTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability", zap.Error(err))
		}
	}

	return available, nil
}

// IsRoomAvailable reports whether one specific room is free for the period.
func (s *DefaultInventoryService) IsRoomAvailable(ctx context.Context, roomID, storeID string, period models.StayPeriod, excludeReservationID string) (bool, error) {
	rooms, err := s.QueryAvailability(ctx, storeID, period, excludeReservationID)
	if err != nil {
		return false, err
	}
	for _, room := range rooms {
		if room.ID == roomID {
			return true, nil
		}
	}
	return false, nil
}

// SetRoomStatus signals an inventory status change (occupied after check-in,
// cleaning after checkout) and drops the store's cached scans.
func (s *DefaultInventoryService) SetRoomStatus(ctx context.Context, roomID, status string) error {
	room, err := s.Repo.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to load room: %w", err)
	}
	if err := s.Repo.SetStatus(ctx, roomID, status); err != nil {
		return fmt.Errorf("failed to set room status: %w", err)
	}
	s.InvalidateStore(ctx, room.StoreID)
	return nil
}

// InvalidateStore drops cached availability entries. Keys embed the store and
// period, so a targeted delete is not possible without a scan; entries are
// short-lived enough that a pattern delete per store suffices.
func (s *DefaultInventoryService) InvalidateStore(ctx context.Context, storeID string) {
	cacheClient := utils.GetCacheClient()
	iter := cacheClient.Scan(ctx, 0, "availability:"+storeID+":*", 100).Iterator()
	for iter.Next(ctx) {
		cacheClient.Del(ctx, iter.Val())
	}
}

func availabilityKey(storeID string, period models.StayPeriod, exclude string) string {
	return fmt.Sprintf("availability:%s:%s:%s:%s",
		storeID,
		period.CheckIn.Format("2006-01-02"),
		period.CheckOut.Format("2006-01-02"),
		exclude,
	)
}
