package reservation

import (
	"context"
	"fmt"
	"time"

	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// RequestExtension prices a stay extension and attaches it in pending state.
// Totals are untouched until approval.
func (s *DefaultReservationService) RequestExtension(ctx context.Context, id string, in models.ExtensionRequestInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := BuildExtension(*res, in, time.Now())
	if err != nil {
		return nil, err
	}
	res.Extensions = append(res.Extensions, ext)

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("extension requested",
		zap.String("reservationID", res.ID),
		zap.String("extensionID", ext.ID),
		zap.Int("additionalNights", ext.AdditionalNights),
		zap.Float64("additionalCost", ext.AdditionalCost),
	)
	return res, nil
}

// ApproveExtension confirms availability for the extension window, marks the
// extension approved, moves the reservation checkout to the new date and
// recomputes totals so the additional cost enters them exactly once. An
// optional payment collected for the extension is recorded on its sub-record.
func (s *DefaultReservationService) ApproveExtension(ctx context.Context, id, extensionID, decidedBy string, pay *models.PaymentInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := res.FindExtension(extensionID)
	if ext == nil {
		return nil, &NotFoundError{Kind: "extension", ID: extensionID}
	}
	if ext.Decided() {
		return nil, &AlreadyDecidedError{ExtensionID: ext.ID, Status: ext.Status}
	}

	window := models.StayPeriod{CheckIn: ext.OriginalCheckOut, CheckOut: ext.NewCheckOut}
	for _, a := range res.Rooms {
		if !sameDay(a.Period.CheckOut, res.Period.CheckOut) {
			continue // room leaves the reservation before the extension starts
		}
		available, err := s.Inventory.IsRoomAvailable(ctx, a.Room.ID, res.StoreID, window, res.ID)
		if err != nil {
			return nil, fmt.Errorf("availability check failed: %w", err)
		}
		if !available {
			return nil, &ConflictError{Message: fmt.Sprintf("room %s is not free for the extension window", a.Room.ID)}
		}
	}

	var payInfo *models.PaymentInfo
	if pay != nil {
		txn, err := s.Collector.Collect(ctx, res.ID, *pay)
		if err != nil {
			return nil, NewValidationError("%v", err)
		}
		if err := s.Repo.AppendTransaction(ctx, res.ID, *txn); err != nil {
			return nil, fmt.Errorf("failed to append transaction: %w", err)
		}
		res.Payment.Transactions = append(res.Payment.Transactions, *txn)
		payInfo = &models.PaymentInfo{
			Method:       txn.Method,
			Status:       models.PaymentPaid,
			Transactions: []models.Transaction{*txn},
		}
	}

	if err := ApproveExtension(ext, payInfo, decidedBy, time.Now()); err != nil {
		return nil, err
	}

	// The stay now runs to the new checkout. Room breakdowns stay frozen:
	// the extra nights are billed through the extension cost, not through a
	// nights recompute.
	res.Period.CheckOut = ext.NewCheckOut
	for i := range res.Rooms {
		if sameDay(res.Rooms[i].Period.CheckOut, ext.OriginalCheckOut) {
			res.Rooms[i].Period.CheckOut = ext.NewCheckOut
		}
	}

	recompute(res)
	res.Payment.Status = derivePaymentStatus(res.Payment, res.Pricing.Total)

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("extension approved",
		zap.String("reservationID", res.ID),
		zap.String("extensionID", ext.ID),
		zap.Float64("additionalCost", ext.AdditionalCost),
	)
	return res, nil
}

// RejectExtension declines a pending extension with a mandatory reason.
func (s *DefaultReservationService) RejectExtension(ctx context.Context, id, extensionID string, in models.ExtensionRejectInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := res.FindExtension(extensionID)
	if ext == nil {
		return nil, &NotFoundError{Kind: "extension", ID: extensionID}
	}
	if err := RejectExtension(ext, in.Reason, in.DecidedBy, time.Now()); err != nil {
		return nil, err
	}

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}
