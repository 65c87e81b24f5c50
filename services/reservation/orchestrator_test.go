package reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	guestRepo "frontdesk/database/repository/guest"
	reservationRepo "frontdesk/database/repository/reservation"
	roomRepo "frontdesk/database/repository/room"
	"frontdesk/models"
)

// ---- collaborator stubs ----

type stubReservationRepo struct {
	items map[string]*models.Reservation
}

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{items: map[string]*models.Reservation{}}
}

func (s *stubReservationRepo) Create(_ context.Context, r *models.Reservation) error {
	cp := *r
	s.items[r.ID] = &cp
	return nil
}

func (s *stubReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	r, ok := s.items[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *stubReservationRepo) Save(_ context.Context, r *models.Reservation) error {
	if _, ok := s.items[r.ID]; !ok {
		return reservationRepo.ErrNotFound
	}
	cp := *r
	s.items[r.ID] = &cp
	return nil
}

func (s *stubReservationRepo) AppendTransaction(_ context.Context, reservationID string, txn models.Transaction) error {
	r, ok := s.items[reservationID]
	if !ok {
		return reservationRepo.ErrNotFound
	}
	r.Payment.Transactions = append(r.Payment.Transactions, txn)
	return nil
}

func (s *stubReservationRepo) ListByStore(_ context.Context, storeID, status string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range s.items {
		if r.StoreID != storeID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *stubReservationRepo) ListArrivalsOn(_ context.Context, storeID string, dayStart time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range s.items {
		if r.StoreID == storeID && sameDay(r.Period.CheckIn, dayStart) {
			out = append(out, *r)
		}
	}
	return out, nil
}

type stubGuestRepo struct {
	guests map[string]*models.Guest
}

func (s *stubGuestRepo) GetByID(_ context.Context, id string) (*models.Guest, error) {
	g, ok := s.guests[id]
	if !ok {
		return nil, guestRepo.ErrNotFound
	}
	return g, nil
}

func (s *stubGuestRepo) Create(_ context.Context, g *models.Guest) error {
	s.guests[g.ID] = g
	return nil
}

type stubInventory struct {
	rooms       map[string]*models.Room
	unavailable map[string]bool
	statusCalls []string
}

func (s *stubInventory) GetRoom(_ context.Context, id string) (*models.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, roomRepo.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *stubInventory) QueryAvailability(_ context.Context, storeID string, _ models.StayPeriod, _ string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range s.rooms {
		if r.StoreID == storeID && !s.unavailable[r.ID] {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *stubInventory) IsRoomAvailable(_ context.Context, roomID, _ string, _ models.StayPeriod, _ string) (bool, error) {
	return !s.unavailable[roomID], nil
}

func (s *stubInventory) SetRoomStatus(_ context.Context, roomID, status string) error {
	s.statusCalls = append(s.statusCalls, roomID+":"+status)
	return nil
}

type stubCollector struct {
	n int
}

func (s *stubCollector) Collect(_ context.Context, _ string, in models.PaymentInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	txnType := in.Type
	if txnType == "" {
		txnType = models.TxnPayment
	}
	s.n++
	return &models.Transaction{
		ID:        fmt.Sprintf("txn-%d", s.n),
		Amount:    in.Amount,
		Method:    in.Method,
		Type:      txnType,
		Reference: in.Reference,
		CreatedAt: time.Now(),
	}, nil
}

type stubAuth struct {
	pin string
}

func (s *stubAuth) ValidateActionPin(_ context.Context, _, pin string) (bool, error) {
	return pin == s.pin, nil
}

type stubScheduler struct {
	scheduled []string
}

func (s *stubScheduler) ScheduleNoShowSweep(reservationID string, _ time.Time) error {
	s.scheduled = append(s.scheduled, reservationID)
	return nil
}

type testEnv struct {
	svc       *DefaultReservationService
	repo      *stubReservationRepo
	inventory *stubInventory
	scheduler *stubScheduler
}

func newTestEnv() *testEnv {
	repo := newStubReservationRepo()
	inventory := &stubInventory{
		rooms: map[string]*models.Room{
			"r1": {ID: "r1", StoreID: "store-1", Number: "101", Rate: 100, Capacity: 2, Clean: true, Maintained: true, AmenitiesSet: true},
			"r2": {ID: "r2", StoreID: "store-1", Number: "205", Rate: 150, Capacity: 3, Clean: true, Maintained: true, AmenitiesSet: true},
		},
		unavailable: map[string]bool{},
	}
	scheduler := &stubScheduler{}

	svc := &DefaultReservationService{
		Repo:      repo,
		Guests:    &stubGuestRepo{guests: map[string]*models.Guest{"g1": {ID: "g1", FirstName: "Ada", LastName: "Okafor"}}},
		Inventory: inventory,
		Auth:      &stubAuth{pin: "4242"},
		Collector: &stubCollector{},
		Sweeper:   scheduler,
		Currency:  "usd",
	}
	return &testEnv{svc: svc, repo: repo, inventory: inventory, scheduler: scheduler}
}

func (e *testEnv) create(t *testing.T, checkIn, checkOut time.Time, rooms ...models.RoomBookingInput) *models.Reservation {
	t.Helper()
	res, err := e.svc.Create(context.Background(), models.CreateReservationInput{
		StoreID:  "store-1",
		GuestID:  "g1",
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    rooms,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return res
}

// ---- scenarios ----

func TestCreateReservation(t *testing.T) {
	env := newTestEnv()

	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{RoomID: "r1", Guests: 2})

	if res.Status != models.StatusPending {
		t.Errorf("status = %s, want pending", res.Status)
	}
	if !approx(res.Pricing.Total, 200) {
		t.Errorf("total = %v, want 200", res.Pricing.Total)
	}
	if !approx(res.Pricing.Balance, 200) {
		t.Errorf("balance = %v, want 200", res.Pricing.Balance)
	}
	if res.Guest.Resolved == nil || res.Guest.Resolved.FirstName != "Ada" {
		t.Error("guest not resolved on the aggregate")
	}
	if _, err := env.repo.GetByID(context.Background(), res.ID); err != nil {
		t.Errorf("reservation not persisted: %v", err)
	}
}

func TestCreateReservationFailures(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	in := models.CreateReservationInput{
		StoreID: "store-1", GuestID: "g1",
		CheckIn: day(2027, 6, 10), CheckOut: day(2027, 6, 12),
		Rooms: []models.RoomBookingInput{{RoomID: "r1", Guests: 2}},
	}

	t.Run("unknown guest", func(t *testing.T) {
		bad := in
		bad.GuestID = "nobody"
		_, err := env.svc.Create(ctx, bad)
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.Kind != "guest" {
			t.Fatalf("expected guest NotFoundError, got %v", err)
		}
	})

	t.Run("room unavailable", func(t *testing.T) {
		env.inventory.unavailable["r1"] = true
		defer delete(env.inventory.unavailable, "r1")
		_, err := env.svc.Create(ctx, in)
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("over capacity", func(t *testing.T) {
		bad := in
		bad.Rooms = []models.RoomBookingInput{{RoomID: "r1", Guests: 5}}
		_, err := env.svc.Create(ctx, bad)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("zero nights", func(t *testing.T) {
		bad := in
		bad.CheckOut = bad.CheckIn
		_, err := env.svc.Create(ctx, bad)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestConfirmSchedulesNoShowSweep(t *testing.T) {
	env := newTestEnv()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{RoomID: "r1"})

	if _, err := env.svc.Confirm(context.Background(), res.ID); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if len(env.scheduler.scheduled) != 1 || env.scheduler.scheduled[0] != res.ID {
		t.Errorf("sweep not scheduled: %v", env.scheduler.scheduled)
	}
}

func TestCheckOutRequiresSettledBalance(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{RoomID: "r1", Guests: 2})

	if _, err := env.svc.Confirm(ctx, res.ID); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if _, err := env.svc.CheckIn(ctx, res.ID); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	_, err := env.svc.CheckOut(ctx, res.ID)
	var payErr *PaymentRequiredError
	if !errors.As(err, &payErr) {
		t.Fatalf("expected PaymentRequiredError, got %v", err)
	}
	if !approx(payErr.Amount, 200) {
		t.Errorf("amount = %v, want 200", payErr.Amount)
	}

	got, err := env.svc.RecordPayment(ctx, res.ID, models.PaymentInput{Amount: 150, Method: models.MethodCash})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if got.Payment.Status != models.PaymentPartial || !approx(got.Pricing.Balance, 50) {
		t.Errorf("after partial payment: status %s balance %v", got.Payment.Status, got.Pricing.Balance)
	}

	if _, err := env.svc.CheckOut(ctx, res.ID); !errors.As(err, &payErr) {
		t.Fatalf("expected PaymentRequiredError on residual balance, got %v", err)
	}
	if !approx(payErr.Amount, 50) {
		t.Errorf("residual amount = %v, want 50", payErr.Amount)
	}

	got, err = env.svc.RecordPayment(ctx, res.ID, models.PaymentInput{Amount: 50, Method: models.MethodCash})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if got.Payment.Status != models.PaymentPaid {
		t.Errorf("status = %s, want paid", got.Payment.Status)
	}

	got, err = env.svc.CheckOut(ctx, res.ID)
	if err != nil {
		t.Fatalf("CheckOut failed after settling: %v", err)
	}
	if got.Status != models.StatusCheckedOut {
		t.Errorf("status = %s, want checked_out", got.Status)
	}

	cleaned := false
	for _, call := range env.inventory.statusCalls {
		if call == "r1:"+models.RoomCleaning {
			cleaned = true
		}
	}
	if !cleaned {
		t.Errorf("room not sent to cleaning: %v", env.inventory.statusCalls)
	}
}

func TestChangeDatesPreservesDiscount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{
			RoomID:   "r1",
			Discount: models.Discount{Type: models.DiscountPercentage, Value: 10},
		})

	if !approx(res.Rooms[0].Pricing.DiscountAmount, 20) {
		t.Fatalf("initial discount amount = %v, want 20", res.Rooms[0].Pricing.DiscountAmount)
	}

	got, err := env.svc.ChangeDates(ctx, res.ID, models.ChangeDatesInput{
		CheckIn:  day(2027, 6, 10),
		CheckOut: day(2027, 6, 13),
	})
	if err != nil {
		t.Fatalf("ChangeDates failed: %v", err)
	}

	a := got.Rooms[0]
	if a.Pricing.NumberOfNights != 3 || !approx(a.Pricing.Subtotal, 300) {
		t.Errorf("repriced to %d nights subtotal %v, want 3/300", a.Pricing.NumberOfNights, a.Pricing.Subtotal)
	}
	if a.Pricing.Discount.Value != 10 || !approx(a.Pricing.DiscountAmount, 30) {
		t.Errorf("discount lost on date change: %+v amount %v", a.Pricing.Discount, a.Pricing.DiscountAmount)
	}
	if !approx(got.Pricing.Total, 270) {
		t.Errorf("total = %v, want 270", got.Pricing.Total)
	}
}

func TestExtensionApprovalBillsOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 13),
		models.RoomBookingInput{RoomID: "r1"})

	if _, err := env.svc.Confirm(ctx, res.ID); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if _, err := env.svc.CheckIn(ctx, res.ID); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	got, err := env.svc.RequestExtension(ctx, res.ID, models.ExtensionRequestInput{
		NewCheckOut: day(2027, 6, 15),
		RequestedBy: "staff-1",
	})
	if err != nil {
		t.Fatalf("RequestExtension failed: %v", err)
	}
	if len(got.Extensions) != 1 {
		t.Fatalf("extensions = %d, want 1", len(got.Extensions))
	}
	extID := got.Extensions[0].ID
	// Pending extension must not bill.
	if !approx(got.Pricing.Total, 300) {
		t.Errorf("total with pending extension = %v, want 300", got.Pricing.Total)
	}

	got, err = env.svc.ApproveExtension(ctx, res.ID, extID, "manager-1", nil)
	if err != nil {
		t.Fatalf("ApproveExtension failed: %v", err)
	}
	if !got.Period.CheckOut.Equal(day(2027, 6, 15)) {
		t.Errorf("checkout = %v, want Jun 15", got.Period.CheckOut)
	}
	if !got.Rooms[0].Period.CheckOut.Equal(day(2027, 6, 15)) {
		t.Errorf("room checkout did not follow: %v", got.Rooms[0].Period.CheckOut)
	}
	// Room breakdown frozen; the two extra nights bill through the extension.
	if got.Rooms[0].Pricing.NumberOfNights != 3 {
		t.Errorf("room nights = %d, want 3", got.Rooms[0].Pricing.NumberOfNights)
	}
	if !approx(got.Pricing.ExtensionCost, 200) {
		t.Errorf("extension cost = %v, want 200", got.Pricing.ExtensionCost)
	}
	if !approx(got.Pricing.Total, 500) {
		t.Errorf("total = %v, want 500", got.Pricing.Total)
	}

	_, err = env.svc.ApproveExtension(ctx, res.ID, extID, "manager-2", nil)
	var decided *AlreadyDecidedError
	if !errors.As(err, &decided) {
		t.Fatalf("expected AlreadyDecidedError on re-approval, got %v", err)
	}
	reloaded, _ := env.svc.Get(ctx, res.ID)
	if !approx(reloaded.Pricing.ExtensionCost, 200) {
		t.Errorf("re-approval changed billing: %v", reloaded.Pricing.ExtensionCost)
	}
}

func TestRejectExtensionNeedsReason(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 13),
		models.RoomBookingInput{RoomID: "r1"})
	if _, err := env.svc.Confirm(ctx, res.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.CheckIn(ctx, res.ID); err != nil {
		t.Fatal(err)
	}
	got, err := env.svc.RequestExtension(ctx, res.ID, models.ExtensionRequestInput{NewCheckOut: day(2027, 6, 14)})
	if err != nil {
		t.Fatal(err)
	}
	extID := got.Extensions[0].ID

	_, err = env.svc.RejectExtension(ctx, res.ID, extID, models.ExtensionRejectInput{DecidedBy: "manager-1"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError without reason, got %v", err)
	}

	got, err = env.svc.RejectExtension(ctx, res.ID, extID, models.ExtensionRejectInput{
		Reason: "room sold for those nights", DecidedBy: "manager-1",
	})
	if err != nil {
		t.Fatalf("RejectExtension failed: %v", err)
	}
	if got.Extensions[0].Status != models.ExtensionRejected {
		t.Errorf("status = %s, want rejected", got.Extensions[0].Status)
	}
	if !approx(got.Pricing.Total, 300) {
		t.Errorf("rejection changed totals: %v", got.Pricing.Total)
	}
}

func TestCommitRoomChangeGatesOnPayment(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 15),
		models.RoomBookingInput{RoomID: "r1"})
	if _, err := env.svc.Confirm(ctx, res.ID); err != nil {
		t.Fatal(err)
	}

	in := models.RoomChangeInput{
		AssignmentID:  res.Rooms[0].ID,
		NewRoomID:     "r2",
		EffectiveDate: day(2027, 6, 10),
		PerformedBy:   "staff-1",
	}

	quote, err := env.svc.PreviewRoomChange(ctx, res.ID, in)
	if err != nil {
		t.Fatalf("PreviewRoomChange failed: %v", err)
	}
	// 5 nights at a 50/night premium.
	if !approx(quote.PriceDifference, 250) {
		t.Fatalf("price difference = %v, want 250", quote.PriceDifference)
	}

	_, err = env.svc.CommitRoomChange(ctx, res.ID, in)
	var payErr *PaymentRequiredError
	if !errors.As(err, &payErr) {
		t.Fatalf("expected PaymentRequiredError without a method, got %v", err)
	}
	if !approx(payErr.Amount, 250) {
		t.Errorf("amount = %v, want 250", payErr.Amount)
	}

	in.PaymentMethod = models.MethodCard
	got, err := env.svc.CommitRoomChange(ctx, res.ID, in)
	if err != nil {
		t.Fatalf("CommitRoomChange failed: %v", err)
	}
	if got.Rooms[0].Room.ID != "r2" {
		t.Errorf("room = %s, want r2", got.Rooms[0].Room.ID)
	}
	if !approx(got.Pricing.Subtotal, 750) {
		t.Errorf("subtotal = %v, want 750", got.Pricing.Subtotal)
	}
	if len(got.Payment.Transactions) != 1 || !approx(got.Payment.Transactions[0].Amount, 250) {
		t.Errorf("difference not collected: %+v", got.Payment.Transactions)
	}
	if len(got.RoomChanges) != 1 {
		t.Errorf("audit record missing: %d", len(got.RoomChanges))
	}
}

func TestCommitRoomChangeRecordsRefundOnDowngrade(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 15),
		models.RoomBookingInput{RoomID: "r2"})
	if _, err := env.svc.Confirm(ctx, res.ID); err != nil {
		t.Fatal(err)
	}

	got, err := env.svc.CommitRoomChange(ctx, res.ID, models.RoomChangeInput{
		AssignmentID:  res.Rooms[0].ID,
		NewRoomID:     "r1",
		EffectiveDate: day(2027, 6, 10),
		PaymentMethod: models.MethodCash,
		PerformedBy:   "staff-1",
	})
	if err != nil {
		t.Fatalf("CommitRoomChange failed: %v", err)
	}
	if len(got.Payment.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1 refund", len(got.Payment.Transactions))
	}
	txn := got.Payment.Transactions[0]
	if txn.Type != models.TxnRefund || !approx(txn.Amount, 250) {
		t.Errorf("refund = %+v, want 250 refund", txn)
	}
}

func TestCommitRoomChangeMidStayProratesByStayNights(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 13),
		models.RoomBookingInput{RoomID: "r1"})
	if _, err := env.svc.Confirm(ctx, res.ID); err != nil {
		t.Fatal(err)
	}
	// CheckIn stamps the wall clock; proration must still anchor on the stay.
	if _, err := env.svc.CheckIn(ctx, res.ID); err != nil {
		t.Fatal(err)
	}

	got, err := env.svc.CommitRoomChange(ctx, res.ID, models.RoomChangeInput{
		AssignmentID:  res.Rooms[0].ID,
		NewRoomID:     "r2",
		EffectiveDate: day(2027, 6, 11),
		PaymentMethod: models.MethodCard,
		PerformedBy:   "staff-1",
	})
	if err != nil {
		t.Fatalf("CommitRoomChange failed: %v", err)
	}

	if len(got.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2 after split", len(got.Rooms))
	}
	rec := got.RoomChanges[0]
	if rec.NightsConsumed != 1 || rec.NightsRemaining != 2 {
		t.Errorf("split = %d consumed / %d remaining, want 1/2", rec.NightsConsumed, rec.NightsRemaining)
	}
	// One night kept on r1 plus two nights repriced on r2.
	if !approx(got.Pricing.Subtotal, 400) {
		t.Errorf("subtotal = %v, want 400", got.Pricing.Subtotal)
	}
	if len(got.Payment.Transactions) != 1 || !approx(got.Payment.Transactions[0].Amount, 100) {
		t.Errorf("difference not collected: %+v", got.Payment.Transactions)
	}
}

func TestReopenRequiresValidPin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{RoomID: "r1"})

	stored := env.repo.items[res.ID]
	stored.Status = models.StatusCheckedOut

	_, err := env.svc.Reopen(ctx, res.ID, models.ReopenInput{Pin: "0000"})
	var unauth *UnauthorizedError
	if !errors.As(err, &unauth) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
	if env.repo.items[res.ID].Status != models.StatusCheckedOut {
		t.Error("failed reopen mutated the reservation")
	}

	got, err := env.svc.Reopen(ctx, res.ID, models.ReopenInput{Pin: "4242"})
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if got.Status != models.StatusCheckedIn {
		t.Errorf("status = %s, want checked_in", got.Status)
	}

	stored = env.repo.items[res.ID]
	stored.Status = models.StatusCheckedOut
	_, err = env.svc.Reopen(ctx, res.ID, models.ReopenInput{Pin: "4242", ToStatus: models.StatusPending})
	var terr *InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected InvalidTransitionError for bad target, got %v", err)
	}
}

func TestRemoveRoomKeepsAtLeastOne(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{RoomID: "r1"}, models.RoomBookingInput{RoomID: "r2"})

	if !approx(res.Pricing.Subtotal, 500) {
		t.Fatalf("subtotal = %v, want 500", res.Pricing.Subtotal)
	}

	got, err := env.svc.RemoveRoom(ctx, res.ID, res.Rooms[1].ID)
	if err != nil {
		t.Fatalf("RemoveRoom failed: %v", err)
	}
	if len(got.Rooms) != 1 || !approx(got.Pricing.Subtotal, 200) {
		t.Errorf("after removal: %d rooms subtotal %v", len(got.Rooms), got.Pricing.Subtotal)
	}

	_, err = env.svc.RemoveRoom(ctx, res.ID, got.Rooms[0].ID)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError removing the last room, got %v", err)
	}
}

func TestApplyPricingEditOnlyTouchesSuppliedFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{
			RoomID:   "r1",
			Discount: models.Discount{Type: models.DiscountPercentage, Value: 10},
			Taxes:    20,
		})

	taxes := 40.0
	got, err := env.svc.ApplyPricingEdit(ctx, res.ID, models.PricingEditInput{
		AssignmentID: res.Rooms[0].ID,
		Taxes:        &taxes,
	})
	if err != nil {
		t.Fatalf("ApplyPricingEdit failed: %v", err)
	}
	a := got.Rooms[0]
	if !approx(a.Pricing.Taxes, 40) {
		t.Errorf("taxes = %v, want 40", a.Pricing.Taxes)
	}
	if a.Pricing.Discount.Value != 10 {
		t.Errorf("discount lost on tax edit: %+v", a.Pricing.Discount)
	}
	// 200 - 20 + 40
	if !approx(got.Pricing.Total, 220) {
		t.Errorf("total = %v, want 220", got.Pricing.Total)
	}
}

func TestMarkNoShowOnlyBeforeCheckIn(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	res := env.create(t, day(2027, 6, 10), day(2027, 6, 12),
		models.RoomBookingInput{RoomID: "r1"})

	if _, err := env.svc.Confirm(ctx, res.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.CheckIn(ctx, res.ID); err != nil {
		t.Fatal(err)
	}

	_, err := env.svc.MarkNoShow(ctx, res.ID)
	var terr *InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected InvalidTransitionError after check-in, got %v", err)
	}
}
