package models

// Discount types.
const (
	DiscountAmount     = "amount"
	DiscountPercentage = "percentage"
)

// Discount is a user-entered reduction, either an absolute amount or a
// percentage of the subtotal. It is supplied by front-desk staff and must
// survive recomputation triggered by unrelated edits.
type Discount struct {
	Type  string  `bson:"type" json:"type"`   // "amount" or "percentage"
	Value float64 `bson:"value" json:"value"` // absolute currency amount, or percent (0-100)
}

// AmountOn resolves the discount against a subtotal.
func (d Discount) AmountOn(subtotal float64) float64 {
	if d.Type == DiscountPercentage {
		return subtotal * d.Value / 100
	}
	return d.Value
}

// FeeBreakdown itemizes the fixed fee buckets on a stay.
type FeeBreakdown struct {
	Service  float64 `bson:"service" json:"service"`
	Cleaning float64 `bson:"cleaning" json:"cleaning"`
	Resort   float64 `bson:"resort" json:"resort"`
	Other    float64 `bson:"other" json:"other"`
}

// Sum returns the combined fee amount.
func (f FeeBreakdown) Sum() float64 {
	return f.Service + f.Cleaning + f.Resort + f.Other
}

// Add returns the bucket-wise sum of two fee breakdowns.
func (f FeeBreakdown) Add(o FeeBreakdown) FeeBreakdown {
	return FeeBreakdown{
		Service:  f.Service + o.Service,
		Cleaning: f.Cleaning + o.Cleaning,
		Resort:   f.Resort + o.Resort,
		Other:    f.Other + o.Other,
	}
}

// PricingBreakdown holds the computed price composition for a single room or
// for the whole reservation. Subtotal, taxes and fee totals are derived from
// room data; Discount and Paid are user-entered and never derived.
type PricingBreakdown struct {
	PricePerNight  float64      `bson:"price_per_night" json:"price_per_night"`
	NumberOfNights int          `bson:"number_of_nights" json:"number_of_nights"`
	Subtotal       float64      `bson:"subtotal" json:"subtotal"`
	Discount       Discount     `bson:"discount" json:"discount"`
	DiscountAmount float64      `bson:"discount_amount" json:"discount_amount"`
	Taxes          float64      `bson:"taxes" json:"taxes"`
	Fees           FeeBreakdown `bson:"fees" json:"fees"`
	ExtensionCost  float64      `bson:"extension_cost,omitempty" json:"extension_cost,omitempty"` // reservation level only
	Total          float64      `bson:"total" json:"total"`
	Paid           float64      `bson:"paid" json:"paid"`       // reservation level only
	Balance        float64      `bson:"balance" json:"balance"` // total - paid
}
