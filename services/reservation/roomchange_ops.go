package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	roomRepo "frontdesk/database/repository/room"
	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// PreviewRoomChange prices a room swap without committing anything. The
// front desk shows the guest the charge or refund before going ahead.
func (s *DefaultReservationService) PreviewRoomChange(ctx context.Context, id string, in models.RoomChangeInput) (*RoomChangeQuote, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	_, quote, err := s.quoteRoomChange(ctx, res, in)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// CommitRoomChange executes a priced swap. A positive price difference must
// be collected first: the commit refuses with PaymentRequiredError unless the
// caller names the payment method the difference was taken with. A negative
// difference is recorded as a refund when a method is given. The swap itself
// is one atomic save: assignment replaced, audit record appended, totals
// recomputed.
func (s *DefaultReservationService) CommitRoomChange(ctx context.Context, id string, in models.RoomChangeInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	newRoom, quote, err := s.quoteRoomChange(ctx, res, in)
	if err != nil {
		return nil, err
	}

	if quote.PriceDifference > balanceTolerance {
		if in.PaymentMethod == "" {
			return nil, &PaymentRequiredError{Amount: quote.PriceDifference, Currency: s.Currency}
		}
		if err := s.recordChangeTransaction(ctx, res, models.TxnPayment, quote.PriceDifference, in.PaymentMethod); err != nil {
			return nil, err
		}
	} else if quote.PriceDifference < -balanceTolerance && in.PaymentMethod != "" {
		if err := s.recordChangeTransaction(ctx, res, models.TxnRefund, -quote.PriceDifference, in.PaymentMethod); err != nil {
			return nil, err
		}
	}

	if err := ApplyRoomChange(res, *quote, *newRoom, in.Reason, in.PerformedBy, time.Now()); err != nil {
		return nil, err
	}
	res.Payment.Status = derivePaymentStatus(res.Payment, res.Pricing.Total)

	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("room changed",
		zap.String("reservationID", res.ID),
		zap.String("fromRoom", quote.FromRoom.RoomID),
		zap.String("toRoom", quote.ToRoom.RoomID),
		zap.Float64("priceDifference", quote.PriceDifference),
	)
	return res, nil
}

// quoteRoomChange resolves the target room, checks its availability for the
// remaining window and computes the proration.
func (s *DefaultReservationService) quoteRoomChange(ctx context.Context, res *models.Reservation, in models.RoomChangeInput) (*models.Room, *RoomChangeQuote, error) {
	if models.IsTerminal(res.Status) {
		return nil, nil, &InvalidTransitionError{Current: res.Status, Requested: "room change"}
	}

	assignment := res.FindAssignment(in.AssignmentID)
	if assignment == nil {
		return nil, nil, &NotFoundError{Kind: "room assignment", ID: in.AssignmentID}
	}

	newRoom, err := s.Inventory.GetRoom(ctx, in.NewRoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, nil, &NotFoundError{Kind: "room", ID: in.NewRoomID}
		}
		return nil, nil, fmt.Errorf("failed to load room: %w", err)
	}

	quote, err := ComputeRoomChange(*res, *assignment, *newRoom, in.EffectiveDate)
	if err != nil {
		return nil, nil, err
	}

	window := models.StayPeriod{CheckIn: quote.EffectiveDate, CheckOut: assignment.Period.CheckOut}
	available, err := s.Inventory.IsRoomAvailable(ctx, newRoom.ID, res.StoreID, window, res.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		return nil, nil, &ConflictError{Message: fmt.Sprintf("room %s is not free for the remaining nights", newRoom.Number)}
	}

	return newRoom, &quote, nil
}

// recordChangeTransaction collects and persists the money movement that goes
// with a room change.
func (s *DefaultReservationService) recordChangeTransaction(ctx context.Context, res *models.Reservation, txnType string, amount float64, method string) error {
	txn, err := s.Collector.Collect(ctx, res.ID, models.PaymentInput{
		Amount: amount,
		Method: method,
		Type:   txnType,
	})
	if err != nil {
		return NewValidationError("%v", err)
	}
	if err := s.Repo.AppendTransaction(ctx, res.ID, *txn); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	res.Payment.Transactions = append(res.Payment.Transactions, *txn)
	return nil
}
