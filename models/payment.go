package models

import "time"

// Payment statuses on a reservation.
const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Transaction types.
const (
	TxnPayment    = "payment"
	TxnRefund     = "refund"
	TxnAdjustment = "adjustment"
)

// Payment methods accepted at the front desk.
const (
	MethodCard = "card"
	MethodCash = "cash"
)

// Transaction is a single money movement against a reservation folio.
// Transactions are append-only.
type Transaction struct {
	ID        string    `bson:"id" json:"id"`
	Amount    float64   `bson:"amount" json:"amount"` // always positive; Type carries direction
	Method    string    `bson:"method" json:"method"`
	Type      string    `bson:"type" json:"type"`
	Reference string    `bson:"reference,omitempty" json:"reference,omitempty"` // processor reference, receipt no., etc.
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PaymentInfo tracks how a reservation (or an extension) is being paid.
type PaymentInfo struct {
	Method       string        `bson:"method,omitempty" json:"method,omitempty"`
	Status       string        `bson:"status" json:"status"`
	Transactions []Transaction `bson:"transactions,omitempty" json:"transactions,omitempty"`
}

// PaidTotal returns net money received: payments minus refunds. Adjustments
// are informational and do not move the balance.
func (p PaymentInfo) PaidTotal() float64 {
	var total float64
	for _, t := range p.Transactions {
		switch t.Type {
		case TxnPayment:
			total += t.Amount
		case TxnRefund:
			total -= t.Amount
		}
	}
	return total
}

// PaymentRequired signals that an operation is blocked until the outstanding
// amount is collected. The engine emits it; it never collects payment itself.
type PaymentRequired struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
