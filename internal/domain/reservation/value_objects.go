package reservation

import (
	"strings"
	"time"

	"venue-admin/internal/domain/pricing"
)

// MaxGuestCount is the facility seating capacity.
const MaxGuestCount = 200

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n <= 0 {
		return GuestCount{}, ErrGuestCountNotPositive
	}
	if n > MaxGuestCount {
		return GuestCount{}, ErrGuestCountTooLarge
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Int() int {
	return g.value
}

type EventType struct {
	value string
}

func NewEventType(s string) (EventType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EventType{}, ErrEventTypeRequired
	}
	return EventType{value: s}, nil
}

func (e EventType) String() string {
	return e.value
}

// NewWindow checks the ordering of the occupancy times.
func NewWindow(start, end time.Time, effectiveEnd *time.Time) (pricing.ReservationWindow, error) {
	if start.IsZero() || end.IsZero() {
		return pricing.ReservationWindow{}, ErrWindowRequired
	}
	if !end.After(start) {
		return pricing.ReservationWindow{}, ErrEndBeforeStart
	}
	if effectiveEnd != nil && effectiveEnd.IsZero() {
		effectiveEnd = nil
	}
	if effectiveEnd != nil && !effectiveEnd.After(start) {
		return pricing.ReservationWindow{}, ErrEffectiveEndBeforeStart
	}
	return pricing.ReservationWindow{Start: start, End: end, EffectiveEnd: effectiveEnd}, nil
}
