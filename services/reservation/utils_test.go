package reservation

import (
	"testing"
	"time"

	"frontdesk/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"whole days", day(2026, 3, 10), day(2026, 3, 15), 5},
		{"same day", day(2026, 3, 10), day(2026, 3, 10), 0},
		{"reversed is negative", day(2026, 3, 15), day(2026, 3, 10), -5},
		{
			"late check-in and early checkout still count whole nights",
			time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC),
			time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC),
			2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NightsBetween(tc.from, tc.to); got != tc.want {
				t.Errorf("NightsBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	got := TruncateToDay(time.Date(2026, 3, 10, 17, 42, 13, 99, time.UTC))
	want := day(2026, 3, 10)
	if !got.Equal(want) {
		t.Errorf("TruncateToDay = %v, want %v", got, want)
	}
}

func TestLaterDay(t *testing.T) {
	a := day(2026, 3, 10)
	b := day(2026, 3, 12)
	if got := laterDay(a, b); !got.Equal(b) {
		t.Errorf("laterDay = %v, want %v", got, b)
	}
	if got := laterDay(b, a); !got.Equal(b) {
		t.Errorf("laterDay = %v, want %v", got, b)
	}
}

func TestClampPeriod(t *testing.T) {
	outer := models.StayPeriod{CheckIn: day(2026, 3, 10), CheckOut: day(2026, 3, 15)}
	sub := models.StayPeriod{CheckIn: day(2026, 3, 8), CheckOut: day(2026, 3, 20)}

	got := clampPeriod(sub, outer)
	if !got.CheckIn.Equal(outer.CheckIn) || !got.CheckOut.Equal(outer.CheckOut) {
		t.Errorf("clampPeriod = %+v, want %+v", got, outer)
	}

	inside := models.StayPeriod{CheckIn: day(2026, 3, 11), CheckOut: day(2026, 3, 13)}
	got = clampPeriod(inside, outer)
	if !got.CheckIn.Equal(inside.CheckIn) || !got.CheckOut.Equal(inside.CheckOut) {
		t.Errorf("clampPeriod moved an inside period: %+v", got)
	}
}

func TestSameDay(t *testing.T) {
	if !sameDay(time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)) {
		t.Error("expected same calendar day")
	}
	if sameDay(day(2026, 3, 10), day(2026, 3, 11)) {
		t.Error("expected different days")
	}
}
