package reservation

import "frontdesk/models"

// balanceTolerance absorbs currency rounding when deciding whether a balance
// is outstanding.
const balanceTolerance = 0.01

// transitionTable is the fixed legal-transition table over reservation
// status. Terminal statuses have no entries; they are left only via reopen.
var transitionTable = map[string][]string{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled, models.StatusNoShow},
	models.StatusConfirmed:  {models.StatusCheckedIn, models.StatusCancelled, models.StatusNoShow},
	models.StatusCheckedIn:  {models.StatusCheckedOut},
	models.StatusCheckedOut: {},
	models.StatusCancelled:  {},
	models.StatusNoShow:     {},
}

// CanTransition reports whether the table allows current -> requested.
func CanTransition(current, requested string) bool {
	for _, allowed := range transitionTable[current] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// ValidateTransition checks the table plus the pre-conditions that go beyond
// it. It inspects the reservation but never mutates it; on any rejection the
// aggregate is untouched.
//
// Check-in additionally requires every assigned room to be resolved and
// ready (clean, maintained, amenities set). Checkout additionally requires
// the balance to be settled; an outstanding balance surfaces as
// PaymentRequiredError so the caller can run a payment-collection step first.
func ValidateTransition(r models.Reservation, requested, currency string) error {
	if !CanTransition(r.Status, requested) {
		return &InvalidTransitionError{Current: r.Status, Requested: requested}
	}

	switch requested {
	case models.StatusCheckedIn:
		for _, a := range r.Rooms {
			if !a.Room.IsResolved() {
				return NewValidationError("room %s not resolved for readiness check", a.Room.ID)
			}
			if !a.Room.Resolved.Ready() {
				return NewValidationError("room %s is not ready for check-in", a.Room.Resolved.Number)
			}
		}
	case models.StatusCheckedOut:
		if r.Pricing.Balance > balanceTolerance && r.Payment.Status != models.PaymentPaid {
			return &PaymentRequiredError{Amount: r.Pricing.Balance, Currency: currency}
		}
	}
	return nil
}

// ValidateReopen checks the reopen pseudo-transition. It is only legal from
// cancelled or checked_out, and only back to the status the stay was in
// before it closed: checked_out reopens to checked_in, cancelled reopens to
// pending or confirmed. PIN authorization happens upstream; by the time this
// runs the capability has already been checked.
func ValidateReopen(current, target string) error {
	switch current {
	case models.StatusCheckedOut:
		if target != models.StatusCheckedIn {
			return &InvalidTransitionError{Current: current, Requested: target}
		}
	case models.StatusCancelled:
		if target != models.StatusPending && target != models.StatusConfirmed {
			return &InvalidTransitionError{Current: current, Requested: target}
		}
	default:
		return &InvalidTransitionError{Current: current, Requested: target}
	}
	return nil
}

// DefaultReopenTarget picks the status a terminal reservation returns to when
// the caller does not name one.
func DefaultReopenTarget(current string) string {
	if current == models.StatusCheckedOut {
		return models.StatusCheckedIn
	}
	return models.StatusConfirmed
}
