package reservation

import (
	"context"
	"time"

	guestRepo "frontdesk/database/repository/guest"
	reservationRepo "frontdesk/database/repository/reservation"
	"frontdesk/models"
	"frontdesk/services/auth"
	"frontdesk/services/payment"
	"frontdesk/services/room"
	"frontdesk/services/tasks"
)

// ReservationService is the lifecycle orchestrator: it sequences the pricing,
// status and workflow components per incoming command and talks to the
// persistence, inventory, authorization and payment collaborators. Every
// mutating operation computes the full new aggregate first and applies it
// with one atomic save; callers serialize mutations per reservation ID.
type ReservationService interface {
	Create(ctx context.Context, in models.CreateReservationInput) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
	ListByStore(ctx context.Context, storeID, status string) ([]models.Reservation, error)
	ListArrivals(ctx context.Context, storeID string, day time.Time) ([]models.Reservation, error)

	ChangeDates(ctx context.Context, id string, in models.ChangeDatesInput) (*models.Reservation, error)
	AddRoom(ctx context.Context, id string, in models.RoomBookingInput) (*models.Reservation, error)
	RemoveRoom(ctx context.Context, id, assignmentID string) (*models.Reservation, error)
	ApplyPricingEdit(ctx context.Context, id string, in models.PricingEditInput) (*models.Reservation, error)
	SetReservationDiscount(ctx context.Context, id string, discount models.Discount) (*models.Reservation, error)
	RecordPayment(ctx context.Context, id string, in models.PaymentInput) (*models.Reservation, error)

	Confirm(ctx context.Context, id string) (*models.Reservation, error)
	CheckIn(ctx context.Context, id string) (*models.Reservation, error)
	CheckOut(ctx context.Context, id string) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) (*models.Reservation, error)
	MarkNoShow(ctx context.Context, id string) (*models.Reservation, error)
	Reopen(ctx context.Context, id string, in models.ReopenInput) (*models.Reservation, error)

	RequestExtension(ctx context.Context, id string, in models.ExtensionRequestInput) (*models.Reservation, error)
	ApproveExtension(ctx context.Context, id, extensionID, decidedBy string, pay *models.PaymentInput) (*models.Reservation, error)
	RejectExtension(ctx context.Context, id, extensionID string, in models.ExtensionRejectInput) (*models.Reservation, error)

	PreviewRoomChange(ctx context.Context, id string, in models.RoomChangeInput) (*RoomChangeQuote, error)
	CommitRoomChange(ctx context.Context, id string, in models.RoomChangeInput) (*models.Reservation, error)
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Repo      reservationRepo.ReservationRepository
	Guests    guestRepo.GuestRepository
	Inventory room.InventoryService
	Auth      auth.AuthorizationService
	Collector payment.CollectorService
	Sweeper   tasks.Scheduler // optional; no-show sweep scheduling
	Currency  string
}
