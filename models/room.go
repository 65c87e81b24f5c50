package models

import "time"

// Room inventory statuses. The engine only ever signals transitions to
// occupied (after check-in) and cleaning (after checkout); housekeeping owns
// the rest.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomCleaning    = "cleaning"
	RoomMaintenance = "maintenance"
)

// Room is the inventory record for a physical room. Inventory is owned by the
// room service; the engine consumes rooms as resolved references.
type Room struct {
	ID           string    `bson:"id" json:"id"`
	StoreID      string    `bson:"store_id" json:"store_id"`
	Number       string    `bson:"number" json:"number"` // door number, e.g. "204"
	TypeID       string    `bson:"type_id" json:"type_id"`
	TypeName     string    `bson:"type_name,omitempty" json:"type_name,omitempty"`
	Rate         float64   `bson:"rate" json:"rate"` // standard price per night
	Capacity     int       `bson:"capacity" json:"capacity"`
	Status       string    `bson:"status" json:"status"`
	Clean        bool      `bson:"clean" json:"clean"`
	Maintained   bool      `bson:"maintained" json:"maintained"`
	AmenitiesSet bool      `bson:"amenities_set" json:"amenities_set"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Ready reports whether the room can receive a guest.
func (r Room) Ready() bool {
	return r.Clean && r.Maintained && r.AmenitiesSet
}

// RoomSnapshot freezes the identifying details of a room at the moment an
// audit record is written, so the record stays meaningful after the live
// room or its rate changes.
type RoomSnapshot struct {
	RoomID   string  `bson:"room_id" json:"room_id"`
	Number   string  `bson:"number" json:"number"`
	TypeName string  `bson:"type_name,omitempty" json:"type_name,omitempty"`
	Rate     float64 `bson:"rate" json:"rate"`
}

// SnapshotRoom captures a room into a snapshot.
func SnapshotRoom(room Room) RoomSnapshot {
	return RoomSnapshot{
		RoomID:   room.ID,
		Number:   room.Number,
		TypeName: room.TypeName,
		Rate:     room.Rate,
	}
}
