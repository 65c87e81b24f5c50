package reservation

import (
	"context"
	"time"

	"frontdesk/config"
	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// Confirm moves a pending reservation to confirmed and schedules the no-show
// sweep for the check-in night.
func (s *DefaultReservationService) Confirm(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.transition(ctx, id, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	if s.Sweeper != nil {
		runAt := sweepTime(res.Period.CheckIn)
		if runAt.After(time.Now()) {
			if err := s.Sweeper.ScheduleNoShowSweep(res.ID, runAt); err != nil {
				utils.GetLogger().Warn("failed to schedule no-show sweep",
					zap.String("reservationID", res.ID), zap.Error(err))
			}
		}
	}
	return res, nil
}

// CheckIn validates readiness, marks the reservation checked in and signals
// inventory that the rooms are now occupied.
func (s *DefaultReservationService) CheckIn(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(*res, models.StatusCheckedIn, s.Currency); err != nil {
		return nil, err
	}

	now := time.Now()
	res.Status = models.StatusCheckedIn
	res.CheckedInAt = &now
	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	s.signalRooms(ctx, res, models.RoomOccupied)
	utils.GetLogger().Info("guest checked in", zap.String("reservationID", res.ID))
	return res, nil
}

// CheckOut settles the stay. An outstanding balance surfaces as
// PaymentRequiredError and leaves the reservation untouched; the front desk
// collects payment and retries. On success the rooms go to cleaning.
func (s *DefaultReservationService) CheckOut(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(*res, models.StatusCheckedOut, s.Currency); err != nil {
		return nil, err
	}

	res.Status = models.StatusCheckedOut
	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	s.signalRooms(ctx, res, models.RoomCleaning)
	utils.GetLogger().Info("guest checked out",
		zap.String("reservationID", res.ID),
		zap.Float64("total", res.Pricing.Total),
	)
	return res, nil
}

// Cancel cancels a pending or confirmed reservation.
func (s *DefaultReservationService) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	return s.transition(ctx, id, models.StatusCancelled)
}

// MarkNoShow flags an un-arrived reservation. Driven by front-desk staff or
// by the scheduled sweep on the check-in night.
func (s *DefaultReservationService) MarkNoShow(ctx context.Context, id string) (*models.Reservation, error) {
	return s.transition(ctx, id, models.StatusNoShow)
}

// Reopen brings a cancelled or checked-out reservation back to life. It is a
// privileged mutation: the caller's action PIN is validated before any state
// is touched.
func (s *DefaultReservationService) Reopen(ctx context.Context, id string, in models.ReopenInput) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.Auth.ValidateActionPin(ctx, res.StoreID, in.Pin)
	if err != nil {
		return nil, &UnauthorizedError{Message: err.Error()}
	}
	if !ok {
		return nil, &UnauthorizedError{Message: "invalid action PIN"}
	}

	target := in.ToStatus
	if target == "" {
		target = DefaultReopenTarget(res.Status)
	}
	if err := ValidateReopen(res.Status, target); err != nil {
		return nil, err
	}

	res.Status = target
	if err := s.save(ctx, res); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("reservation reopened",
		zap.String("reservationID", res.ID),
		zap.String("status", target),
	)
	return res, nil
}

// transition runs a plain table-checked status change with one atomic save.
func (s *DefaultReservationService) transition(ctx context.Context, id, requested string) (*models.Reservation, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(*res, requested, s.Currency); err != nil {
		return nil, err
	}

	res.Status = requested
	if err := s.save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// signalRooms tells inventory about a room status change after a successful
// transition. Signal failures are logged, not propagated: the reservation
// state is already committed and housekeeping reconciles room status anyway.
func (s *DefaultReservationService) signalRooms(ctx context.Context, res *models.Reservation, status string) {
	for _, a := range res.Rooms {
		if err := s.Inventory.SetRoomStatus(ctx, a.Room.ID, status); err != nil {
			utils.GetLogger().Warn("failed to signal room status",
				zap.String("roomID", a.Room.ID),
				zap.String("status", status),
				zap.Error(err),
			)
		}
	}
}

// sweepTime is the moment on the check-in night when un-arrived reservations
// are flagged.
func sweepTime(checkIn time.Time) time.Time {
	day := TruncateToDay(checkIn)
	return day.Add(time.Duration(config.AppConfig.NoShowCutoffHour) * time.Hour)
}
