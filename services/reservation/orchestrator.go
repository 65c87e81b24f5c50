package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	guestRepo "frontdesk/database/repository/guest"
	reservationRepo "frontdesk/database/repository/reservation"
	roomRepo "frontdesk/database/repository/room"
	"frontdesk/models"
	"frontdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books a new reservation: it validates the stay period, resolves the
// guest and every requested room, confirms availability, prices each room and
// persists the aggregate in pending status.
func (s *DefaultReservationService) Create(ctx context.Context, in models.CreateReservationInput) (*models.Reservation, error) {
	period := models.StayPeriod{CheckIn: TruncateToDay(in.CheckIn), CheckOut: TruncateToDay(in.CheckOut)}
	if NightsBetween(period.CheckIn, period.CheckOut) < 1 {
		return nil, NewValidationError("checkout must be at least one night after check-in")
	}
	if len(in.Rooms) == 0 {
		return nil, NewValidationError("a reservation needs at least one room")
	}

	guest, err := s.Guests.GetByID(ctx, in.GuestID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrNotFound) {
			return nil, &NotFoundError{Kind: "guest", ID: in.GuestID}
		}
		return nil, fmt.Errorf("failed to load guest: %w", err)
	}

	res := &models.Reservation{
		ID:      uuid.New().String(),
		StoreID: in.StoreID,
		Guest:   models.GuestRef{ID: guest.ID, Resolved: guest},
		Period:  period,
		Status:  models.StatusPending,
		Payment: models.PaymentInfo{Status: models.PaymentPending},
		Notes:   in.Notes,
	}

	for _, roomIn := range in.Rooms {
		assignment, err := s.buildAssignment(ctx, res, roomIn)
		if err != nil {
			return nil, err
		}
		res.Rooms = append(res.Rooms, *assignment)
	}

	recompute(res)

	if err := s.Repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to store reservation: %w", err)
	}

	utils.GetLogger().Info("reservation created",
		zap.String("reservationID", res.ID),
		zap.String("storeID", res.StoreID),
		zap.Int("rooms", len(res.Rooms)),
		zap.Float64("total", res.Pricing.Total),
	)
	return res, nil
}

// Get loads a reservation with its room refs resolved.
func (s *DefaultReservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	return s.load(ctx, id)
}

// ListByStore lists a store's reservations, optionally filtered by status.
func (s *DefaultReservationService) ListByStore(ctx context.Context, storeID, status string) ([]models.Reservation, error) {
	return s.Repo.ListByStore(ctx, storeID, status)
}

// ListArrivals lists the reservations due to arrive on the given day that
// have not yet checked in. The front desk works this list each morning.
func (s *DefaultReservationService) ListArrivals(ctx context.Context, storeID string, day time.Time) ([]models.Reservation, error) {
	return s.Repo.ListArrivalsOn(ctx, storeID, TruncateToDay(day))
}

// load fetches the aggregate and resolves every room reference, so the
// engine components downstream never see a bare ID.
func (s *DefaultReservationService) load(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, &NotFoundError{Kind: "reservation", ID: id}
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	if err := s.resolveRooms(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// resolveRooms attaches the full room record to every assignment ref.
func (s *DefaultReservationService) resolveRooms(ctx context.Context, res *models.Reservation) error {
	for i := range res.Rooms {
		if res.Rooms[i].Room.IsResolved() {
			continue
		}
		room, err := s.Inventory.GetRoom(ctx, res.Rooms[i].Room.ID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrNotFound) {
				return &NotFoundError{Kind: "room", ID: res.Rooms[i].Room.ID}
			}
			return fmt.Errorf("failed to resolve room %s: %w", res.Rooms[i].Room.ID, err)
		}
		res.Rooms[i].Room.Resolved = room
	}
	return nil
}

// buildAssignment resolves and prices one requested room for the
// reservation, checking availability for its sub-period.
func (s *DefaultReservationService) buildAssignment(ctx context.Context, res *models.Reservation, in models.RoomBookingInput) (*models.RoomAssignment, error) {
	period := res.Period
	if in.CheckIn != nil {
		period.CheckIn = TruncateToDay(*in.CheckIn)
	}
	if in.CheckOut != nil {
		period.CheckOut = TruncateToDay(*in.CheckOut)
	}
	period = clampPeriod(period, res.Period)

	nights := NightsBetween(period.CheckIn, period.CheckOut)
	if nights < 1 {
		return nil, NewValidationError("room stay must be at least one night")
	}

	room, err := s.Inventory.GetRoom(ctx, in.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, &NotFoundError{Kind: "room", ID: in.RoomID}
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	available, err := s.Inventory.IsRoomAvailable(ctx, room.ID, res.StoreID, period, res.ID)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		return nil, &ConflictError{Message: fmt.Sprintf("room %s is not available for the requested dates", room.Number)}
	}

	guests := in.Guests
	if guests <= 0 {
		guests = 1
	}
	if guests > room.Capacity {
		return nil, NewValidationError("room %s holds %d guests, got %d", room.Number, room.Capacity, guests)
	}

	pricing, err := CalculateRoomPricing(PricingSpec{
		PricePerNight:  room.Rate,
		NumberOfNights: nights,
		Discount:       in.Discount,
		Taxes:          in.Taxes,
		Fees:           in.Fees,
	})
	if err != nil {
		return nil, err
	}

	return &models.RoomAssignment{
		ID:      uuid.New().String(),
		Room:    models.ResolvedRoomRef(*room),
		Guests:  guests,
		Period:  period,
		Pricing: pricing,
	}, nil
}

// save recomputes totals and writes the aggregate back in one atomic update.
func (s *DefaultReservationService) save(ctx context.Context, res *models.Reservation) error {
	recompute(res)
	res.UpdatedAt = time.Now()
	if err := s.Repo.Save(ctx, res); err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}
	return nil
}
