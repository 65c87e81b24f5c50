package reservation

import (
	"time"

	"github.com/google/uuid"

	"frontdesk/models"
)

// BuildExtension prices a stay-extension request and returns it in pending
// state. The reservation must be checked in; the new checkout must add at
// least one night. Nothing on the reservation's totals changes until the
// extension is approved.
//
// Under same_rate the extra nights are billed at the reservation's combined
// nightly rate (the sum of the current room rates). Under discounted_rate the
// caller supplies a rate, which must be positive and at most that combined
// rate.
func BuildExtension(r models.Reservation, in models.ExtensionRequestInput, now time.Time) (models.Extension, error) {
	if r.Status != models.StatusCheckedIn {
		return models.Extension{}, &InvalidTransitionError{Current: r.Status, Requested: "extension"}
	}

	additionalNights := NightsBetween(r.Period.CheckOut, in.NewCheckOut)
	if additionalNights <= 0 {
		return models.Extension{}, NewValidationError("new checkout must be after the current checkout")
	}

	originalRate := combinedNightlyRate(r)

	strategy := in.RateStrategy
	if strategy == "" {
		strategy = models.RateSame
	}

	var rate float64
	switch strategy {
	case models.RateSame:
		rate = originalRate
	case models.RateDiscounted:
		if in.DiscountedRate <= 0 {
			return models.Extension{}, NewValidationError("discounted rate must be positive")
		}
		if in.DiscountedRate > originalRate {
			return models.Extension{}, NewValidationError("discounted rate %.2f exceeds original rate %.2f", in.DiscountedRate, originalRate)
		}
		rate = in.DiscountedRate
	default:
		return models.Extension{}, NewValidationError("unknown rate strategy %q", strategy)
	}

	return models.Extension{
		ID:               uuid.New().String(),
		RequestedBy:      in.RequestedBy,
		OriginalCheckOut: r.Period.CheckOut,
		NewCheckOut:      TruncateToDay(in.NewCheckOut),
		AdditionalNights: additionalNights,
		RateStrategy:     strategy,
		NightlyRate:      rate,
		AdditionalCost:   rate * float64(additionalNights),
		Status:           models.ExtensionPending,
		Notes:            in.Notes,
		RequestedAt:      now,
	}, nil
}

// ApproveExtension marks a pending extension approved and attaches its
// payment sub-record. Deciding an already-decided extension is an error, not
// a no-op. Availability for the extension window is confirmed by the caller
// before this runs; the caller also triggers the pricing recomputation that
// folds the additional cost into the reservation total exactly once.
func ApproveExtension(ext *models.Extension, payment *models.PaymentInfo, decidedBy string, now time.Time) error {
	if ext.Decided() {
		return &AlreadyDecidedError{ExtensionID: ext.ID, Status: ext.Status}
	}
	ext.Status = models.ExtensionApproved
	ext.Payment = payment
	ext.DecidedBy = decidedBy
	ext.DecidedAt = &now
	return nil
}

// RejectExtension marks a pending extension rejected. A non-empty reason is
// mandatory. Rejection has no pricing impact.
func RejectExtension(ext *models.Extension, reason, decidedBy string, now time.Time) error {
	if ext.Decided() {
		return &AlreadyDecidedError{ExtensionID: ext.ID, Status: ext.Status}
	}
	if reason == "" {
		return NewValidationError("rejection reason is required")
	}
	ext.Status = models.ExtensionRejected
	ext.RejectionReason = reason
	ext.DecidedBy = decidedBy
	ext.DecidedAt = &now
	return nil
}

// combinedNightlyRate sums the nightly rates of the rooms currently on the
// reservation.
func combinedNightlyRate(r models.Reservation) float64 {
	var rate float64
	for _, a := range r.Rooms {
		rate += a.Pricing.PricePerNight
	}
	return rate
}
