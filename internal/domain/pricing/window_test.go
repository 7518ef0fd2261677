//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"venue-admin/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestCutoff(t *testing.T) {
	t.Run("next day at three", func(t *testing.T) {
		assert.Equal(t, at(16, 3, 0), pricing.Cutoff(at(15, 18, 0)))
	})

	t.Run("start after midnight still rolls to the following day", func(t *testing.T) {
		assert.Equal(t, at(17, 3, 0), pricing.Cutoff(at(16, 1, 30)))
	})

	t.Run("month boundary", func(t *testing.T) {
		start := time.Date(2024, time.March, 31, 20, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, time.April, 1, 3, 0, 0, 0, time.UTC), pricing.Cutoff(start))
	})

	t.Run("stays in the start location", func(t *testing.T) {
		loc := time.FixedZone("UTC+8", 8*3600)
		start := time.Date(2024, time.March, 15, 18, 0, 0, 0, loc)
		cutoff := pricing.Cutoff(start)
		assert.Equal(t, 3, cutoff.Hour())
		assert.Equal(t, loc, cutoff.Location())
	})
}

func TestOvertimeHours(t *testing.T) {
	cases := []struct {
		name   string
		window pricing.ReservationWindow
		want   string
	}{
		{
			name:   "missing start",
			window: pricing.ReservationWindow{End: at(16, 5, 0)},
			want:   "0",
		},
		{
			name:   "missing end",
			window: pricing.ReservationWindow{Start: at(15, 18, 0)},
			want:   "0",
		},
		{
			name:   "ends before cutoff",
			window: pricing.ReservationWindow{Start: at(15, 18, 0), End: at(15, 23, 0)},
			want:   "0",
		},
		{
			name:   "ends exactly at cutoff",
			window: pricing.ReservationWindow{Start: at(15, 18, 0), End: at(16, 3, 0)},
			want:   "0",
		},
		{
			name:   "ends after cutoff",
			window: pricing.ReservationWindow{Start: at(15, 18, 0), End: at(16, 5, 0)},
			want:   "2",
		},
		{
			name:   "fractional hours",
			window: pricing.ReservationWindow{Start: at(15, 18, 0), End: at(16, 4, 30)},
			want:   "1.5",
		},
		{
			name: "ends before cutoff, effective end after cutoff",
			window: pricing.ReservationWindow{
				Start:        at(15, 18, 0),
				End:          at(15, 20, 0),
				EffectiveEnd: ptrTime(at(16, 4, 0)),
			},
			want: "1",
		},
		{
			name: "ends before cutoff, effective end before cutoff",
			window: pricing.ReservationWindow{
				Start:        at(15, 18, 0),
				End:          at(15, 20, 0),
				EffectiveEnd: ptrTime(at(16, 2, 0)),
			},
			want: "0",
		},
		{
			name: "ends after cutoff, effective end later still counts from cutoff",
			window: pricing.ReservationWindow{
				Start:        at(15, 18, 0),
				End:          at(16, 5, 0),
				EffectiveEnd: ptrTime(at(16, 6, 0)),
			},
			want: "3",
		},
		{
			name: "ends after cutoff, effective end not after end",
			window: pricing.ReservationWindow{
				Start:        at(15, 18, 0),
				End:          at(16, 5, 0),
				EffectiveEnd: ptrTime(at(16, 4, 0)),
			},
			want: "0",
		},
		{
			name: "zero effective end is treated as absent",
			window: pricing.ReservationWindow{
				Start:        at(15, 18, 0),
				End:          at(16, 5, 0),
				EffectiveEnd: ptrTime(time.Time{}),
			},
			want: "2",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertDecimal(t, c.want, pricing.OvertimeHours(c.window))
		})
	}

	t.Run("never negative without effective end up to the cutoff", func(t *testing.T) {
		start := at(15, 18, 0)
		for end := start.Add(time.Hour); !end.After(pricing.Cutoff(start)); end = end.Add(30 * time.Minute) {
			got := pricing.OvertimeHours(pricing.ReservationWindow{Start: start, End: end})
			assert.True(t, got.IsZero(), "end %s", end)
		}
	})
}

func TestReservationWindowIn(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	w := pricing.ReservationWindow{Start: at(15, 18, 0), EffectiveEnd: ptrTime(at(16, 8, 0))}

	got := w.In(loc)

	assert.Equal(t, loc, got.Start.Location())
	assert.True(t, got.End.IsZero())
	assert.Equal(t, 3, got.EffectiveEnd.Hour())
	assert.True(t, got.Start.Equal(w.Start))
}
