package reservation

import (
	"errors"
	"testing"

	"frontdesk/models"
)

func TestCanTransition(t *testing.T) {
	allowed := map[string]map[string]bool{
		models.StatusPending:   {models.StatusConfirmed: true, models.StatusCancelled: true, models.StatusNoShow: true},
		models.StatusConfirmed: {models.StatusCheckedIn: true, models.StatusCancelled: true, models.StatusNoShow: true},
		models.StatusCheckedIn: {models.StatusCheckedOut: true},
	}
	statuses := []string{
		models.StatusPending, models.StatusConfirmed, models.StatusCheckedIn,
		models.StatusCheckedOut, models.StatusCancelled, models.StatusNoShow,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func readyRoom(id string) *models.Room {
	return &models.Room{ID: id, Number: id, Rate: 100, Capacity: 2, Clean: true, Maintained: true, AmenitiesSet: true}
}

func TestValidateTransitionCheckIn(t *testing.T) {
	base := models.Reservation{
		Status: models.StatusConfirmed,
		Rooms: []models.RoomAssignment{
			{ID: "a1", Room: models.RoomRef{ID: "r1", Resolved: readyRoom("r1")}},
		},
	}

	if err := ValidateTransition(base, models.StatusCheckedIn, "usd"); err != nil {
		t.Fatalf("ready room should check in, got %v", err)
	}

	unresolved := base
	unresolved.Rooms = []models.RoomAssignment{{ID: "a1", Room: models.RoomRef{ID: "r1"}}}
	var verr *ValidationError
	if err := ValidateTransition(unresolved, models.StatusCheckedIn, "usd"); !errors.As(err, &verr) {
		t.Fatalf("unresolved room: expected ValidationError, got %v", err)
	}

	dirty := readyRoom("r1")
	dirty.Clean = false
	notReady := base
	notReady.Rooms = []models.RoomAssignment{{ID: "a1", Room: models.RoomRef{ID: "r1", Resolved: dirty}}}
	if err := ValidateTransition(notReady, models.StatusCheckedIn, "usd"); !errors.As(err, &verr) {
		t.Fatalf("dirty room: expected ValidationError, got %v", err)
	}
}

func TestValidateTransitionCheckOut(t *testing.T) {
	tests := []struct {
		name          string
		balance       float64
		paymentStatus string
		wantPayment   bool
	}{
		{"settled balance", 0, models.PaymentPaid, false},
		{"outstanding balance blocks", 50, models.PaymentPartial, true},
		{"rounding remainder passes", 0.005, models.PaymentPartial, false},
		{"paid status overrides residual balance", 3, models.PaymentPaid, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := models.Reservation{
				Status:  models.StatusCheckedIn,
				Pricing: models.PricingBreakdown{Balance: tc.balance},
				Payment: models.PaymentInfo{Status: tc.paymentStatus},
			}
			err := ValidateTransition(r, models.StatusCheckedOut, "usd")
			var payErr *PaymentRequiredError
			if tc.wantPayment {
				if !errors.As(err, &payErr) {
					t.Fatalf("expected PaymentRequiredError, got %v", err)
				}
				if !approx(payErr.Amount, tc.balance) {
					t.Errorf("amount = %v, want %v", payErr.Amount, tc.balance)
				}
				if payErr.Currency != "usd" {
					t.Errorf("currency = %q, want usd", payErr.Currency)
				}
			} else if err != nil {
				t.Fatalf("expected checkout to pass, got %v", err)
			}
		})
	}
}

func TestValidateTransitionRejectsIllegalMoves(t *testing.T) {
	r := models.Reservation{Status: models.StatusCheckedOut}
	err := ValidateTransition(r, models.StatusCheckedIn, "usd")
	var terr *InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if terr.Current != models.StatusCheckedOut || terr.Requested != models.StatusCheckedIn {
		t.Errorf("error fields = %s -> %s", terr.Current, terr.Requested)
	}
}

func TestValidateReopen(t *testing.T) {
	tests := []struct {
		current string
		target  string
		ok      bool
	}{
		{models.StatusCheckedOut, models.StatusCheckedIn, true},
		{models.StatusCheckedOut, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusPending, true},
		{models.StatusCancelled, models.StatusConfirmed, true},
		{models.StatusCancelled, models.StatusCheckedIn, false},
		{models.StatusNoShow, models.StatusConfirmed, false},
		{models.StatusPending, models.StatusConfirmed, false},
	}

	for _, tc := range tests {
		err := ValidateReopen(tc.current, tc.target)
		if tc.ok && err != nil {
			t.Errorf("ValidateReopen(%s, %s) = %v, want nil", tc.current, tc.target, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ValidateReopen(%s, %s) = nil, want error", tc.current, tc.target)
		}
	}
}

func TestDefaultReopenTarget(t *testing.T) {
	if got := DefaultReopenTarget(models.StatusCheckedOut); got != models.StatusCheckedIn {
		t.Errorf("checked_out reopens to %s, want checked_in", got)
	}
	if got := DefaultReopenTarget(models.StatusCancelled); got != models.StatusConfirmed {
		t.Errorf("cancelled reopens to %s, want confirmed", got)
	}
}
