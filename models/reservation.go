package models

import "time"

// Reservation statuses.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// StayPeriod is a half-open [CheckIn, CheckOut) date range. Times are
// truncated to day boundaries before any nights arithmetic.
type StayPeriod struct {
	CheckIn  time.Time `bson:"check_in" json:"check_in"`
	CheckOut time.Time `bson:"check_out" json:"check_out"`
}

// RoomAssignment binds one room to a reservation, with its own sub-period,
// guest count and pricing. The sub-period must lie within the reservation's
// overall stay period.
type RoomAssignment struct {
	ID            string           `bson:"id" json:"id"`
	Room          RoomRef          `bson:"room" json:"room"`
	Guests        int              `bson:"guests" json:"guests"`
	Period        StayPeriod       `bson:"period" json:"period"`
	Pricing       PricingBreakdown `bson:"pricing" json:"pricing"`
	AssignedGuest *GuestRef        `bson:"assigned_guest,omitempty" json:"assigned_guest,omitempty"`
}

// Reservation is the aggregate the engine operates on. All state lives here;
// the engine computes a new aggregate and the caller persists it atomically.
type Reservation struct {
	ID          string             `bson:"id" json:"id"`
	StoreID     string             `bson:"store_id" json:"store_id"` // property/branch the booking belongs to
	Guest       GuestRef           `bson:"guest" json:"guest"`
	Rooms       []RoomAssignment   `bson:"rooms" json:"rooms"`
	Period      StayPeriod         `bson:"period" json:"period"`
	Status      string             `bson:"status" json:"status"`
	Pricing     PricingBreakdown   `bson:"pricing" json:"pricing"`
	Payment     PaymentInfo        `bson:"payment" json:"payment"`
	Extensions  []Extension        `bson:"extensions,omitempty" json:"extensions,omitempty"`
	RoomChanges []RoomChangeRecord `bson:"room_changes,omitempty" json:"room_changes,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CheckedInAt *time.Time         `bson:"checked_in_at,omitempty" json:"checked_in_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// FindExtension returns the extension with the given ID, or nil.
func (r *Reservation) FindExtension(id string) *Extension {
	for i := range r.Extensions {
		if r.Extensions[i].ID == id {
			return &r.Extensions[i]
		}
	}
	return nil
}

// FindAssignment returns the room assignment with the given ID, or nil.
func (r *Reservation) FindAssignment(id string) *RoomAssignment {
	for i := range r.Rooms {
		if r.Rooms[i].ID == id {
			return &r.Rooms[i]
		}
	}
	return nil
}

// IsTerminal reports whether a status can only be left via reopen.
func IsTerminal(status string) bool {
	switch status {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
