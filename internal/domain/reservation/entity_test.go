//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/domain/reservation"
	"venue-admin/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestSubmission(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.False(t, actual.IsUpdate())
		assert.Equal(t, 120, actual.GuestCount().Int())
		assert.Equal(t, "Wedding", actual.EventType().String())
		assert.Equal(t, reservation.StatusPending, actual.Status())
	})

	t.Run("update carries the id", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithID(42).BuildDomain()
		require.NoError(t, err)
		require.True(t, actual.IsUpdate())
		assert.Equal(t, int64(42), *actual.ID())
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "one guest", mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(1) }},
			{name: "at capacity", mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(200) }},
			{
				name:   "zero guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(0) },
				errIs:  reservation.ErrGuestCountNotPositive,
			},
			{
				name:   "over capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(201) },
				errIs:  reservation.ErrGuestCountTooLarge,
			},
		})
	})

	t.Run("window validation", func(t *testing.T) {
		start := builder.DefaultStart
		runCases(t, []testCase{
			{
				name:   "ending equal to starting",
				mutate: func(b *builder.ReservationBuilder) { b.WithWindow(start, start) },
				errIs:  reservation.ErrEndBeforeStart,
			},
			{
				name:   "missing ending",
				mutate: func(b *builder.ReservationBuilder) { b.WithWindow(start, time.Time{}) },
				errIs:  reservation.ErrWindowRequired,
			},
			{
				name:   "effective ending before starting",
				mutate: func(b *builder.ReservationBuilder) { b.WithEffectiveEnd(start.Add(-time.Hour)) },
				errIs:  reservation.ErrEffectiveEndBeforeStart,
			},
			{
				name:   "effective ending earlier than ending",
				mutate: func(b *builder.ReservationBuilder) { b.WithEffectiveEnd(start.Add(time.Hour)) },
			},
		})
	})

	t.Run("other fields", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank user",
				mutate: func(b *builder.ReservationBuilder) { b.UserID = "  " },
				errIs:  reservation.ErrUserRequired,
			},
			{
				name:   "blank event type",
				mutate: func(b *builder.ReservationBuilder) { b.EventType = "" },
				errIs:  reservation.ErrEventTypeRequired,
			},
			{
				name:   "unknown status",
				mutate: func(b *builder.ReservationBuilder) { b.WithStatus("Archived") },
				errIs:  reservation.ErrInvalidStatus,
			},
			{
				name:   "negative tax rate",
				mutate: func(b *builder.ReservationBuilder) { b.TaxRate = decimal.NewFromInt(-1) },
				errIs:  reservation.ErrNegativeTaxRate,
			},
		})
	})
}

func TestSubmissionPrice(t *testing.T) {
	calc := pricing.NewCalculator(time.UTC)

	t.Run("prices with the current rates", func(t *testing.T) {
		sub, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		result, err := sub.Price(calc, builder.DefaultRates())
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("2193.5").Equal(result.TotalPrice))
	})

	t.Run("discount equal to subtotal is accepted", func(t *testing.T) {
		sub, err := builder.NewReservationBuilder().WithAmountDiscount("2050").BuildDomain()
		require.NoError(t, err)

		result, err := sub.Price(calc, builder.DefaultRates())
		require.NoError(t, err)
		assert.True(t, result.TotalPrice.IsZero())
	})

	t.Run("discount above subtotal is rejected", func(t *testing.T) {
		sub, err := builder.NewReservationBuilder().WithAmountDiscount("2051").BuildDomain()
		require.NoError(t, err)

		result, err := sub.Price(calc, builder.DefaultRates())
		require.ErrorIs(t, err, reservation.ErrNegativeTotal)
		assert.True(t, result.Discounted.IsNegative())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
