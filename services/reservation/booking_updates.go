package reservation

import (
	"context"
	"fmt"

	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// ChangeDates moves the reservation's stay period. Room sub-periods that
// tracked the old period follow the new one; others are clamped into it.
// Every assignment is repriced for its new night count with its discount,
// taxes and fees untouched.
func (s *DefaultReservationService) ChangeDates(ctx context.Context, id string, in models.ChangeDatesInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminal(res.Status) {
		return nil, &InvalidTransitionError{Current: res.Status, Requested: "date change"}
	}

	newPeriod := models.StayPeriod{CheckIn: TruncateToDay(in.CheckIn), CheckOut: TruncateToDay(in.CheckOut)}
	if NightsBetween(newPeriod.CheckIn, newPeriod.CheckOut) < 1 {
		return nil, NewValidationError("checkout must be at least one night after check-in")
	}

	oldPeriod := res.Period
	for i := range res.Rooms {
		a := &res.Rooms[i]

		period := a.Period
		if sameDay(period.CheckIn, oldPeriod.CheckIn) {
			period.CheckIn = newPeriod.CheckIn
		}
		if sameDay(period.CheckOut, oldPeriod.CheckOut) {
			period.CheckOut = newPeriod.CheckOut
		}
		period = clampPeriod(period, newPeriod)

		nights := NightsBetween(period.CheckIn, period.CheckOut)
		if nights < 1 {
			return nil, NewValidationError("room %s would keep no nights under the new dates", a.Room.ID)
		}

		available, err := s.Inventory.IsRoomAvailable(ctx, a.Room.ID, res.StoreID, period, res.ID)
		if err != nil {
			return nil, fmt.Errorf("availability check failed: %w", err)
		}
		if !available {
			return nil, &ConflictError{Message: fmt.Sprintf("room %s is not available for the new dates", a.Room.ID)}
		}

		pricing, err := RepriceAssignment(*a, a.Pricing.PricePerNight, nights)
		if err != nil {
			return nil, err
		}
		a.Period = period
		a.Pricing = pricing
	}

	res.Period = newPeriod
	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// AddRoom attaches another room to the reservation.
func (s *DefaultReservationService) AddRoom(ctx context.Context, id string, in models.RoomBookingInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminal(res.Status) {
		return nil, &InvalidTransitionError{Current: res.Status, Requested: "room add"}
	}

	assignment, err := s.buildAssignment(ctx, res, in)
	if err != nil {
		return nil, err
	}
	res.Rooms = append(res.Rooms, *assignment)

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// RemoveRoom detaches an assignment. The last room cannot be removed; cancel
// the reservation instead.
func (s *DefaultReservationService) RemoveRoom(ctx context.Context, id, assignmentID string) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminal(res.Status) {
		return nil, &InvalidTransitionError{Current: res.Status, Requested: "room remove"}
	}
	if len(res.Rooms) == 1 {
		return nil, NewValidationError("cannot remove the last room; cancel the reservation instead")
	}

	idx := -1
	for i := range res.Rooms {
		if res.Rooms[i].ID == assignmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &NotFoundError{Kind: "room assignment", ID: assignmentID}
	}
	res.Rooms = append(res.Rooms[:idx], res.Rooms[idx+1:]...)

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyPricingEdit applies an explicit staff edit to a room's discount,
// taxes or fee spec and rederives that room's breakdown. Unsupplied fields
// keep their current values.
func (s *DefaultReservationService) ApplyPricingEdit(ctx context.Context, id string, in models.PricingEditInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminal(res.Status) {
		return nil, &InvalidTransitionError{Current: res.Status, Requested: "pricing edit"}
	}

	a := res.FindAssignment(in.AssignmentID)
	if a == nil {
		return nil, &NotFoundError{Kind: "room assignment", ID: in.AssignmentID}
	}

	spec := PricingSpec{
		PricePerNight:  a.Pricing.PricePerNight,
		NumberOfNights: a.Pricing.NumberOfNights,
		Discount:       a.Pricing.Discount,
		Taxes:          a.Pricing.Taxes,
		Fees:           a.Pricing.Fees,
	}
	if in.Discount != nil {
		spec.Discount = *in.Discount
	}
	if in.Taxes != nil {
		spec.Taxes = *in.Taxes
	}
	if in.Fees != nil {
		spec.Fees = *in.Fees
	}

	pricing, err := CalculateRoomPricing(spec)
	if err != nil {
		return nil, err
	}
	a.Pricing = pricing

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// SetReservationDiscount edits the reservation-level discount.
func (s *DefaultReservationService) SetReservationDiscount(ctx context.Context, id string, discount models.Discount) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminal(res.Status) {
		return nil, &InvalidTransitionError{Current: res.Status, Requested: "discount edit"}
	}
	if discount.Value < 0 {
		return nil, NewValidationError("discount value must not be negative")
	}
	if discount.Type == models.DiscountPercentage && discount.Value > 100 {
		return nil, NewValidationError("percentage discount must not exceed 100")
	}

	res.Pricing.Discount = discount
	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// RecordPayment collects a payment (or refund) through the payment
// collaborator and folds it into the folio. The ledger entry is persisted
// first; the derived payment status and balance follow with the aggregate
// save.
func (s *DefaultReservationService) RecordPayment(ctx context.Context, id string, in models.PaymentInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	txn, err := s.Collector.Collect(ctx, res.ID, in)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	if err := s.Repo.AppendTransaction(ctx, res.ID, *txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}
	res.Payment.Transactions = append(res.Payment.Transactions, *txn)
	if res.Payment.Method == "" {
		res.Payment.Method = txn.Method
	}

	recompute(res)
	res.Payment.Status = derivePaymentStatus(res.Payment, res.Pricing.Total)

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment recorded",
		zap.String("reservationID", res.ID),
		zap.Float64("amount", txn.Amount),
		zap.String("type", txn.Type),
		zap.Float64("balance", res.Pricing.Balance),
	)
	return res, nil
}

// derivePaymentStatus maps the folio state onto the payment status field.
// A zero total counts as settled, so a fully discounted stay reads paid
// rather than sitting on pending with nothing owed.
func derivePaymentStatus(p models.PaymentInfo, total float64) string {
	paid := p.PaidTotal()

	hasRefund := false
	for _, t := range p.Transactions {
		if t.Type == models.TxnRefund {
			hasRefund = true
			break
		}
	}

	switch {
	case paid <= 0 && hasRefund:
		return models.PaymentRefunded
	case paid >= total-balanceTolerance:
		return models.PaymentPaid
	case paid > 0:
		return models.PaymentPartial
	default:
		return models.PaymentPending
	}
}
