package reservation

import (
	"math"
	"time"

	"frontdesk/models"
)

// TruncateToDay drops the time-of-day component. All nights arithmetic
// truncates both ends to day boundaries first, so a late check-in and an
// early checkout still count the same nights.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NightsBetween counts whole nights from one day to another. Both arguments
// are truncated to day boundaries; the result is negative when to precedes
// from. Rounding absorbs DST days that are not exactly 24 hours.
func NightsBetween(from, to time.Time) int {
	from = TruncateToDay(from)
	to = TruncateToDay(to)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// laterDay returns the later of two day-truncated times.
func laterDay(a, b time.Time) time.Time {
	a = TruncateToDay(a)
	b = TruncateToDay(b)
	if b.After(a) {
		return b
	}
	return a
}

// clampPeriod fits a room sub-period inside the reservation period.
func clampPeriod(sub, outer models.StayPeriod) models.StayPeriod {
	if sub.CheckIn.Before(outer.CheckIn) {
		sub.CheckIn = outer.CheckIn
	}
	if sub.CheckOut.After(outer.CheckOut) {
		sub.CheckOut = outer.CheckOut
	}
	return sub
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return TruncateToDay(a).Equal(TruncateToDay(b))
}
