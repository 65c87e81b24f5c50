package reservation

import "frontdesk/models"

// PricingSpec is the input to the per-room price calculation.
type PricingSpec struct {
	PricePerNight  float64
	NumberOfNights int
	Discount       models.Discount
	Taxes          float64
	Fees           models.FeeBreakdown
}

// CalculateRoomPricing computes a room's breakdown from its spec. It is pure
// and deterministic; callers replace the room's breakdown with the result in
// place whenever any input changes. It never accumulates onto a previous
// breakdown.
func CalculateRoomPricing(spec PricingSpec) (models.PricingBreakdown, error) {
	if err := validatePricingSpec(spec); err != nil {
		return models.PricingBreakdown{}, err
	}

	subtotal := spec.PricePerNight * float64(spec.NumberOfNights)
	discountAmount := spec.Discount.AmountOn(subtotal)

	total := subtotal - discountAmount + spec.Taxes + spec.Fees.Sum()
	if total < 0 {
		total = 0
	}

	return models.PricingBreakdown{
		PricePerNight:  spec.PricePerNight,
		NumberOfNights: spec.NumberOfNights,
		Subtotal:       subtotal,
		Discount:       spec.Discount,
		DiscountAmount: discountAmount,
		Taxes:          spec.Taxes,
		Fees:           spec.Fees,
		Total:          total,
	}, nil
}

// RepriceAssignment recomputes an assignment's breakdown for new nights or a
// new rate while keeping the user-entered discount and the taxes/fees spec
// exactly as they were. Date and room edits go through here so they can never
// zero out a concurrently entered discount.
func RepriceAssignment(a models.RoomAssignment, pricePerNight float64, nights int) (models.PricingBreakdown, error) {
	return CalculateRoomPricing(PricingSpec{
		PricePerNight:  pricePerNight,
		NumberOfNights: nights,
		Discount:       a.Pricing.Discount,
		Taxes:          a.Pricing.Taxes,
		Fees:           a.Pricing.Fees,
	})
}

func validatePricingSpec(spec PricingSpec) error {
	if spec.PricePerNight < 0 {
		return NewValidationError("price per night must not be negative")
	}
	if spec.NumberOfNights < 1 {
		return NewValidationError("number of nights must be at least 1")
	}
	if spec.Discount.Value < 0 {
		return NewValidationError("discount value must not be negative")
	}
	if spec.Discount.Type != "" && spec.Discount.Type != models.DiscountAmount && spec.Discount.Type != models.DiscountPercentage {
		return NewValidationError("unknown discount type %q", spec.Discount.Type)
	}
	if spec.Discount.Type == models.DiscountPercentage && spec.Discount.Value > 100 {
		return NewValidationError("percentage discount must not exceed 100")
	}
	if spec.Taxes < 0 {
		return NewValidationError("taxes must not be negative")
	}
	if spec.Fees.Service < 0 || spec.Fees.Cleaning < 0 || spec.Fees.Resort < 0 || spec.Fees.Other < 0 {
		return NewValidationError("fees must not be negative")
	}
	return nil
}
