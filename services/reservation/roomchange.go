package reservation

import (
	"time"

	"github.com/google/uuid"

	"frontdesk/models"
)

// RoomChangeQuote is the priced result of a room-change computation. A
// positive PriceDifference must be collected before the swap is committed; a
// negative one is a refund owed to the guest.
type RoomChangeQuote struct {
	AssignmentID    string              `json:"assignment_id"`
	FromRoom        models.RoomSnapshot `json:"from_room"`
	ToRoom          models.RoomSnapshot `json:"to_room"`
	EffectiveDate   time.Time           `json:"effective_date"`
	NightsConsumed  int                 `json:"nights_consumed"`
	NightsRemaining int                 `json:"nights_remaining"`
	PriceDifference float64             `json:"price_difference"`
}

// ComputeRoomChange prorates the cost of swapping one assignment onto a new
// room. The stay splits at the effective date into a consumed portion, frozen
// at the old rate, and a remaining portion repriced at the new room's rate.
//
// Nights are counted on day boundaries and only the assignment's billed
// nights split: an approved extension stretches the period past them, but
// those nights charge through the extension cost and never reprice here.
// Nothing has been consumed before check-in, so the consumed count is zero
// unless the reservation is checked_in; the anchor is the actual check-in
// day when recorded, clamped into the assignment period, and the consumed
// count never exceeds the billed nights not covered by the remaining split.
func ComputeRoomChange(r models.Reservation, assignment models.RoomAssignment, newRoom models.Room, effectiveDate time.Time) (RoomChangeQuote, error) {
	if newRoom.ID == assignment.Room.ID {
		return RoomChangeQuote{}, NewValidationError("new room is the same as the current room")
	}

	effective := TruncateToDay(effectiveDate)
	if effective.After(TruncateToDay(assignment.Period.CheckOut)) {
		return RoomChangeQuote{}, NewValidationError("effective date is after the assignment checkout")
	}

	billedNights := assignment.Pricing.NumberOfNights
	billedCheckOut := TruncateToDay(assignment.Period.CheckIn).AddDate(0, 0, billedNights)

	remainingStart := laterDay(effective, assignment.Period.CheckIn)
	nightsRemaining := NightsBetween(remainingStart, billedCheckOut)
	if nightsRemaining < 0 {
		nightsRemaining = 0
	}
	if nightsRemaining == 0 {
		return RoomChangeQuote{}, NewValidationError("no nights remaining to move to the new room")
	}

	nightsConsumed := 0
	if r.Status == models.StatusCheckedIn {
		anchor := assignment.Period.CheckIn
		if r.CheckedInAt != nil {
			anchor = laterDay(*r.CheckedInAt, assignment.Period.CheckIn)
		}
		nightsConsumed = NightsBetween(anchor, effective)
		if nightsConsumed < 0 {
			nightsConsumed = 0
		}
		if nightsConsumed > billedNights-nightsRemaining {
			nightsConsumed = billedNights - nightsRemaining
		}
	}

	oldRate := assignment.Pricing.PricePerNight

	return RoomChangeQuote{
		AssignmentID:    assignment.ID,
		FromRoom:        fromSnapshot(assignment),
		ToRoom:          models.SnapshotRoom(newRoom),
		EffectiveDate:   effective,
		NightsConsumed:  nightsConsumed,
		NightsRemaining: nightsRemaining,
		PriceDifference: float64(nightsRemaining) * (newRoom.Rate - oldRate),
	}, nil
}

// ApplyRoomChange commits a quote onto the reservation in memory: the
// affected assignment is swapped, an immutable audit record is appended, and
// the reservation totals are recomputed. Payment gating for a positive
// difference happens in the orchestrator before this runs.
//
// Mid-stay the original assignment is truncated to the consumed nights and
// frozen at the old rate with its discount, taxes and fees untouched, and a
// fresh assignment covers the remaining nights on the new room. Before
// check-in the existing assignment simply moves to the new room and rate.
func ApplyRoomChange(r *models.Reservation, quote RoomChangeQuote, newRoom models.Room, reason, performedBy string, now time.Time) error {
	assignment := r.FindAssignment(quote.AssignmentID)
	if assignment == nil {
		return &NotFoundError{Kind: "room assignment", ID: quote.AssignmentID}
	}

	if quote.NightsConsumed > 0 {
		consumed, err := RepriceAssignment(*assignment, assignment.Pricing.PricePerNight, quote.NightsConsumed)
		if err != nil {
			return err
		}
		remainingPeriod := models.StayPeriod{CheckIn: quote.EffectiveDate, CheckOut: assignment.Period.CheckOut}
		remainingPricing, err := CalculateRoomPricing(PricingSpec{
			PricePerNight:  newRoom.Rate,
			NumberOfNights: quote.NightsRemaining,
		})
		if err != nil {
			return err
		}

		assignment.Period.CheckOut = quote.EffectiveDate
		assignment.Pricing = consumed

		r.Rooms = append(r.Rooms, models.RoomAssignment{
			ID:            uuid.New().String(),
			Room:          models.ResolvedRoomRef(newRoom),
			Guests:        assignment.Guests,
			Period:        remainingPeriod,
			Pricing:       remainingPricing,
			AssignedGuest: assignment.AssignedGuest,
		})
	} else {
		repriced, err := RepriceAssignment(*assignment, newRoom.Rate, quote.NightsRemaining)
		if err != nil {
			return err
		}
		assignment.Room = models.ResolvedRoomRef(newRoom)
		assignment.Pricing = repriced
	}

	r.RoomChanges = append(r.RoomChanges, models.RoomChangeRecord{
		ID:              uuid.New().String(),
		AssignmentID:    quote.AssignmentID,
		FromRoom:        quote.FromRoom,
		ToRoom:          quote.ToRoom,
		EffectiveDate:   quote.EffectiveDate,
		NightsConsumed:  quote.NightsConsumed,
		NightsRemaining: quote.NightsRemaining,
		PriceDifference: quote.PriceDifference,
		Reason:          reason,
		PerformedBy:     performedBy,
		CreatedAt:       now,
	})

	recompute(r)
	return nil
}

// fromSnapshot captures the outgoing room of an assignment, falling back to
// the assignment's own pricing when the full room record is not attached.
func fromSnapshot(a models.RoomAssignment) models.RoomSnapshot {
	if a.Room.IsResolved() {
		return models.SnapshotRoom(*a.Room.Resolved)
	}
	return models.RoomSnapshot{RoomID: a.Room.ID, Rate: a.Pricing.PricePerNight}
}
