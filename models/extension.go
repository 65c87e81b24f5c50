package models

import "time"

// Extension statuses. An extension is decided exactly once; approved and
// rejected are terminal.
const (
	ExtensionPending  = "pending"
	ExtensionApproved = "approved"
	ExtensionRejected = "rejected"
)

// Rate strategies for pricing the extra nights of an extension.
const (
	RateSame       = "same_rate"       // original per-night rate
	RateDiscounted = "discounted_rate" // manager-supplied rate, 0 < rate <= original
)

// Extension is a request to move the reservation's checkout date later. It is
// priced at request time and only enters the reservation totals once approved.
type Extension struct {
	ID               string       `bson:"id" json:"id"`
	RequestedBy      string       `bson:"requested_by" json:"requested_by"` // staff user ID
	OriginalCheckOut time.Time    `bson:"original_check_out" json:"original_check_out"`
	NewCheckOut      time.Time    `bson:"new_check_out" json:"new_check_out"`
	AdditionalNights int          `bson:"additional_nights" json:"additional_nights"`
	RateStrategy     string       `bson:"rate_strategy" json:"rate_strategy"`
	NightlyRate      float64      `bson:"nightly_rate" json:"nightly_rate"` // rate actually applied
	AdditionalCost   float64      `bson:"additional_cost" json:"additional_cost"`
	Status           string       `bson:"status" json:"status"`
	Notes            string       `bson:"notes,omitempty" json:"notes,omitempty"`
	RejectionReason  string       `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	Payment          *PaymentInfo `bson:"payment,omitempty" json:"payment,omitempty"`
	RequestedAt      time.Time    `bson:"requested_at" json:"requested_at"`
	DecidedAt        *time.Time   `bson:"decided_at,omitempty" json:"decided_at,omitempty"`
	DecidedBy        string       `bson:"decided_by,omitempty" json:"decided_by,omitempty"`
}

// Decided reports whether the extension has been approved or rejected.
func (e Extension) Decided() bool {
	return e.Status != ExtensionPending
}
