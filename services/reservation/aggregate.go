package reservation

import "frontdesk/models"

// AggregatePricing rolls the per-room breakdowns and approved extensions up
// into the reservation-level breakdown.
//
// Subtotal, taxes, fee buckets and room discount amounts are derived by
// summing room data; the extension cost is the sum of approved extensions
// only. DiscountAmount combines the room-level discounts with the
// reservation-level discount resolved against the combined subtotal, so a
// discount entered on a single room reduces the reservation total the same
// way it reduces that room's total. The reservation's discount and paid
// amount are supplied, never derived: recomputation reads them from the
// current aggregate and writes them back untouched, so a room or date edit
// can never clobber a staff-entered discount. The function is pure and
// idempotent.
func AggregatePricing(r models.Reservation) models.PricingBreakdown {
	agg := models.PricingBreakdown{
		NumberOfNights: NightsBetween(r.Period.CheckIn, r.Period.CheckOut),
		Discount:       r.Pricing.Discount,
		Paid:           r.Payment.PaidTotal(),
	}

	for _, room := range r.Rooms {
		agg.PricePerNight += room.Pricing.PricePerNight
		agg.Subtotal += room.Pricing.Subtotal
		agg.DiscountAmount += room.Pricing.DiscountAmount
		agg.Taxes += room.Pricing.Taxes
		agg.Fees = agg.Fees.Add(room.Pricing.Fees)
	}

	for _, ext := range r.Extensions {
		if ext.Status == models.ExtensionApproved {
			agg.ExtensionCost += ext.AdditionalCost
		}
	}

	agg.DiscountAmount += agg.Discount.AmountOn(agg.Subtotal)

	agg.Total = agg.Subtotal - agg.DiscountAmount + agg.Taxes + agg.Fees.Sum() + agg.ExtensionCost
	if agg.Total < 0 {
		agg.Total = 0
	}
	agg.Balance = agg.Total - agg.Paid

	return agg
}

// recompute replaces the reservation-level breakdown in place. Every discrete
// mutation (room add/remove, date change, extension approval, pricing edit,
// payment) ends with exactly one call to this before the aggregate is saved.
func recompute(r *models.Reservation) {
	r.Pricing = AggregatePricing(*r)
}
