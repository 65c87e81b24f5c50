package models

import "time"

// RoomChangeRecord is an append-only audit entry for a mid-stay (or pre-stay)
// room swap. It is never mutated after creation; the from/to snapshots keep
// the original rates even though the live assignment changes.
type RoomChangeRecord struct {
	ID              string       `bson:"id" json:"id"`
	AssignmentID    string       `bson:"assignment_id" json:"assignment_id"`
	FromRoom        RoomSnapshot `bson:"from_room" json:"from_room"`
	ToRoom          RoomSnapshot `bson:"to_room" json:"to_room"`
	EffectiveDate   time.Time    `bson:"effective_date" json:"effective_date"`
	NightsConsumed  int          `bson:"nights_consumed" json:"nights_consumed"`
	NightsRemaining int          `bson:"nights_remaining" json:"nights_remaining"`
	PriceDifference float64      `bson:"price_difference" json:"price_difference"` // positive = charge, negative = refund
	Reason          string       `bson:"reason" json:"reason"`
	PerformedBy     string       `bson:"performed_by" json:"performed_by"`
	CreatedAt       time.Time    `bson:"created_at" json:"created_at"`
}
