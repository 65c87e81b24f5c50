package roomRepo

import (
	"context"

	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListBookedRoomIDs returns the IDs of rooms held by reservations that
// overlap the given period. Periods are half-open, so back-to-back stays
// (checkout day equals check-in day) do not collide. Terminal reservations
// release their rooms. An in-progress mutation can exclude its own
// reservation from the scan.
func (r *mongoRoomRepo) ListBookedRoomIDs(ctx context.Context, storeID string, period models.StayPeriod, excludeReservationID string) ([]string, error) {
	filter := bson.M{
		"store_id": storeID,
		"status":   bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed, models.StatusCheckedIn}},
		"rooms": bson.M{"$elemMatch": bson.M{
			"period.check_in":  bson.M{"$lt": period.CheckOut},
			"period.check_out": bson.M{"$gt": period.CheckIn},
		}},
	}
	if excludeReservationID != "" {
		filter["id"] = bson.M{"$ne": excludeReservationID}
	}

	cursor, err := r.reservations.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}

	var ids []string
	seen := make(map[string]bool)
	for _, res := range reservations {
		for _, a := range res.Rooms {
			if a.Period.CheckIn.Before(period.CheckOut) && a.Period.CheckOut.After(period.CheckIn) && !seen[a.Room.ID] {
				seen[a.Room.ID] = true
				ids = append(ids, a.Room.ID)
			}
		}
	}
	return ids, nil
}
