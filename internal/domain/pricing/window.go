package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// CutoffHour is the local hour on the day after the start at which free occupancy ends.
const CutoffHour = 3

var secondsPerHour = decimal.NewFromInt(3600)

// ReservationWindow holds the occupancy times. A zero Start or End means the
// value was not provided.
type ReservationWindow struct {
	Start        time.Time
	End          time.Time
	EffectiveEnd *time.Time
}

func (w ReservationWindow) In(loc *time.Location) ReservationWindow {
	if loc == nil {
		return w
	}
	out := ReservationWindow{}
	if !w.Start.IsZero() {
		out.Start = w.Start.In(loc)
	}
	if !w.End.IsZero() {
		out.End = w.End.In(loc)
	}
	if w.EffectiveEnd != nil && !w.EffectiveEnd.IsZero() {
		eff := w.EffectiveEnd.In(loc)
		out.EffectiveEnd = &eff
	}
	return out
}

func (w ReservationWindow) hasEffectiveEnd() bool {
	return w.EffectiveEnd != nil && !w.EffectiveEnd.IsZero()
}

// Cutoff returns 03:00 on the calendar day after start, in start's location.
func Cutoff(start time.Time) time.Time {
	y, m, d := start.Date()
	return time.Date(y, m, d+1, CutoffHour, 0, 0, 0, start.Location())
}

// OvertimeHours returns the billable hours past the cutoff. Overtime is always
// measured from the cutoff, including when the effective ending is used.
func OvertimeHours(w ReservationWindow) decimal.Decimal {
	if w.Start.IsZero() || w.End.IsZero() {
		return decimal.Zero
	}

	cutoff := Cutoff(w.Start)

	if w.End.Before(cutoff) {
		if w.hasEffectiveEnd() && w.EffectiveEnd.After(cutoff) {
			return hoursBetween(cutoff, *w.EffectiveEnd)
		}
		return decimal.Zero
	}

	switch {
	case w.hasEffectiveEnd() && w.EffectiveEnd.After(w.End):
		return hoursBetween(cutoff, *w.EffectiveEnd)
	case !w.hasEffectiveEnd():
		return hoursBetween(cutoff, w.End)
	default:
		return decimal.Zero
	}
}

func hoursBetween(from, to time.Time) decimal.Decimal {
	d := to.Sub(from)
	return decimal.NewFromInt(d.Nanoseconds()).
		Div(decimal.NewFromInt(int64(time.Second))).
		Div(secondsPerHour)
}
