package models

import "time"

// RoomBookingInput describes one room on a new reservation or a room-add.
type RoomBookingInput struct {
	RoomID   string       `json:"room_id" binding:"required"`
	Guests   int          `json:"guests"`
	CheckIn  *time.Time   `json:"check_in,omitempty"`  // defaults to the reservation period
	CheckOut *time.Time   `json:"check_out,omitempty"` // defaults to the reservation period
	Discount Discount     `json:"discount"`
	Taxes    float64      `json:"taxes"`
	Fees     FeeBreakdown `json:"fees"`
}

// CreateReservationInput is the booking command.
type CreateReservationInput struct {
	StoreID  string             `json:"store_id" binding:"required"`
	GuestID  string             `json:"guest_id" binding:"required"`
	CheckIn  time.Time          `json:"check_in" binding:"required"`
	CheckOut time.Time          `json:"check_out" binding:"required"`
	Rooms    []RoomBookingInput `json:"rooms" binding:"required"`
	Notes    string             `json:"notes"`
}

// PricingEditInput carries an explicit staff edit to a room's pricing spec.
// Only the supplied fields are applied; subtotal and total are always derived.
type PricingEditInput struct {
	AssignmentID string        `json:"assignment_id" binding:"required"`
	Discount     *Discount     `json:"discount,omitempty"`
	Taxes        *float64      `json:"taxes,omitempty"`
	Fees         *FeeBreakdown `json:"fees,omitempty"`
}

// ReservationDiscountInput edits the reservation-level discount.
type ReservationDiscountInput struct {
	Discount Discount `json:"discount"`
}

// ChangeDatesInput moves the reservation stay period.
type ChangeDatesInput struct {
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
}

// ExtensionRequestInput asks for a later checkout.
type ExtensionRequestInput struct {
	NewCheckOut    time.Time `json:"new_check_out" binding:"required"`
	RateStrategy   string    `json:"rate_strategy"`             // defaults to same_rate
	DiscountedRate float64   `json:"discounted_rate,omitempty"` // required for discounted_rate
	Notes          string    `json:"notes"`
	RequestedBy    string    `json:"requested_by"`
}

// ExtensionRejectInput carries the mandatory rejection reason.
type ExtensionRejectInput struct {
	Reason    string `json:"reason" binding:"required"`
	DecidedBy string `json:"decided_by"`
}

// RoomChangeInput swaps one assignment onto a new room.
type RoomChangeInput struct {
	AssignmentID  string    `json:"assignment_id" binding:"required"`
	NewRoomID     string    `json:"new_room_id" binding:"required"`
	EffectiveDate time.Time `json:"effective_date" binding:"required"`
	Reason        string    `json:"reason"`
	PerformedBy   string    `json:"performed_by"`
	PaymentMethod string    `json:"payment_method,omitempty"` // how an additional charge was collected
}

// PaymentInput records a collected payment or refund against the folio.
type PaymentInput struct {
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method" binding:"required"`
	Type      string  `json:"type"` // defaults to payment
	Reference string  `json:"reference"`
}

// ReopenInput reopens a terminal reservation; the PIN is checked by the
// authorization service before the engine runs.
type ReopenInput struct {
	Pin      string `json:"pin" binding:"required"`
	ToStatus string `json:"to_status"` // defaults to checked_in for checked_out, confirmed for cancelled
}
