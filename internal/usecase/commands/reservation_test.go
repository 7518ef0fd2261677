//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/domain/reservation"
	"venue-admin/internal/pkg/clock"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/shared"
	"venue-admin/tests/common/builder"
	sharedmock "venue-admin/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRates     *sharedmock.MockRateProvider
	mockCache     *sharedmock.MockRateCache
	mockGateway   *sharedmock.MockReservationGateway
	mockPublisher *sharedmock.MockEventPublisher
	clock         *clock.MockClock
	cmds          commands.ReservationCommands
	actorID       uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRates = sharedmock.NewMockRateProvider(s.mockCtrl)
	s.mockCache = sharedmock.NewMockRateCache(s.mockCtrl)
	s.mockGateway = sharedmock.NewMockReservationGateway(s.mockCtrl)
	s.mockPublisher = sharedmock.NewMockEventPublisher(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))
	s.actorID = uuid.New()

	s.cmds = commands.NewReservationCommands(
		s.mockRates,
		s.mockCache,
		s.mockGateway,
		s.mockPublisher,
		pricing.NewCalculator(time.UTC),
		s.clock,
		commands.Settings{TaxRate: pricing.DefaultTaxRate, PriceTolerance: decimal.RequireFromString("0.01")},
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *ReservationCommandsTestSuite) TestSubmit() {
	ctx := context.Background()

	s.Run("success: creates the reservation with the recomputed rates", func() {
		in := builder.NewReservationBuilder().BuildSubmitInput()
		id := int64(11)

		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)
		s.mockGateway.EXPECT().Create(gomock.Any(), "token", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p shared.ReservationPayload) (*shared.ForwardedReservation, error) {
				s.Nil(p.ID)
				s.Equal("Wedding", p.EventType)
				s.Equal(120, p.NumberOfSeats)
				s.Equal("Pending", p.Status)
				s.InDelta(2193.5, p.TotalPrice, 1e-9)
				s.InDelta(0.07, p.TaxRate, 1e-9)
				s.InDelta(1500, p.Rates.FacilityRate, 1e-9)
				s.InDelta(250, p.Rates.CleaningRate, 1e-9)
				s.InDelta(2.5, p.Rates.SeatRate, 1e-9)
				s.InDelta(150, p.Rates.OvertimeRate, 1e-9)
				s.Empty(p.AddOns)
				return &shared.ForwardedReservation{ID: &id, Status: "Pending", Body: []byte(`{"id":11}`)}, nil
			}).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e shared.Event) error {
				s.Equal(shared.EventReservationPriced, e.Type)
				s.Equal(s.actorID, e.ActorID)
				s.Equal(s.clock.Now(), e.OccurredAt)
				payload, ok := e.Payload.(commands.ReservationPricedEvent)
				s.Require().True(ok)
				s.Equal(id, *payload.ReservationID)
				s.True(payload.Created)
				return nil
			}).Times(1)

		got, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		s.Require().NoError(err)
		s.True(got.Created)
		s.Equal(id, *got.Reservation.ID)
		s.True(got.Pricing.TotalPrice.Equal(decimal.RequireFromString("2193.5")))
	})

	s.Run("success: updates when an id is present", func() {
		in := builder.NewReservationBuilder().WithID(3).BuildSubmitInput()

		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)
		s.mockGateway.EXPECT().Update(gomock.Any(), "token", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p shared.ReservationPayload) (*shared.ForwardedReservation, error) {
				s.Require().NotNil(p.ID)
				s.Equal(int64(3), *p.ID)
				return &shared.ForwardedReservation{ID: p.ID}, nil
			}).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		s.Require().NoError(err)
		s.False(got.Created)
	})

	s.Run("success: total within the tolerance is accepted", func() {
		in := builder.NewReservationBuilder().WithTotalPrice("2193.505").BuildSubmitInput()

		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)
		s.mockGateway.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(&shared.ForwardedReservation{}, nil).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		s.NoError(err)
	})

	s.Run("success: a failed publish does not fail the submission", func() {
		in := builder.NewReservationBuilder().BuildSubmitInput()

		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)
		s.mockGateway.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(&shared.ForwardedReservation{}, nil).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(1)

		_, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		s.NoError(err)
	})

	s.Run("error: price mismatch reports both totals", func() {
		in := builder.NewReservationBuilder().WithTotalPrice("2000").BuildSubmitInput()
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)

		_, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		var mismatch *commands.PriceMismatchError
		s.Require().True(errs.As(err, &mismatch))
		s.True(mismatch.Submitted.Equal(decimal.NewFromInt(2000)))
		s.True(mismatch.Expected.Equal(decimal.RequireFromString("2193.5")))
		s.True(errs.Is(err, commands.ErrPriceMismatch))
	})

	s.Run("error: discount above the subtotal", func() {
		in := builder.NewReservationBuilder().WithAmountDiscount("5000").BuildSubmitInput()
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)

		_, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		s.True(errs.Is(err, commands.ErrNegativeTotal))
	})

	s.Run("error: invalid submissions never reach the venue API", func() {
		cases := []struct {
			name   string
			mutate func(*builder.ReservationBuilder)
			want   error
		}{
			{name: "missing user", mutate: func(b *builder.ReservationBuilder) { b.UserID = "" }, want: reservation.ErrUserRequired},
			{name: "missing event type", mutate: func(b *builder.ReservationBuilder) { b.EventType = " " }, want: reservation.ErrEventTypeRequired},
			{name: "no guests", mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 0 }, want: reservation.ErrGuestCountNotPositive},
			{name: "too many guests", mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 201 }, want: reservation.ErrGuestCountTooLarge},
			{name: "end before start", mutate: func(b *builder.ReservationBuilder) { b.End = b.Start.Add(-time.Hour) }, want: reservation.ErrEndBeforeStart},
			{name: "missing window", mutate: func(b *builder.ReservationBuilder) { b.Start = time.Time{} }, want: reservation.ErrWindowRequired},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				in := builder.NewReservationBuilder().With(tc.mutate).BuildSubmitInput()

				_, err := s.cmds.Submit(ctx, in, s.actorID, "token")

				s.True(errs.Is(err, commands.ErrInvalidReservation), "got %v", err)
				s.True(errs.Is(err, tc.want), "got %v", err)
			})
		}
	})

	s.Run("error: unknown status", func() {
		in := builder.NewReservationBuilder().BuildSubmitInput()
		in.Status = "Archived"

		_, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		s.True(errs.Is(err, commands.ErrInvalidReservation))
	})

	s.Run("error: venue API failures are passed through", func() {
		in := builder.NewReservationBuilder().BuildSubmitInput()
		upstream := errs.Mark(errors.New("409"), errs.ErrUpstreamConflict)

		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)
		s.mockGateway.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream).Times(1)

		_, err := s.cmds.Submit(ctx, in, s.actorID, "token")

		s.True(errs.Is(err, errs.ErrUpstreamConflict))
	})
}

// ================================================================================
// TestTakeAction
// ================================================================================

func (s *ReservationCommandsTestSuite) TestTakeAction() {
	ctx := context.Background()

	s.Run("success: forwards the action and reports the new status", func() {
		s.mockGateway.EXPECT().UpdateStatus(gomock.Any(), "token", "user-1", int64(8), reservation.ActionConfirm).Return(nil).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e shared.Event) error {
				s.Equal(shared.EventReservationStatusChanged, e.Type)
				s.Equal(commands.StatusChangedEvent{
					ReservationID: 8, UserID: "user-1", Action: "Confirm", From: "Pending", To: "Booked",
				}, e.Payload)
				return nil
			}).Times(1)

		got, err := s.cmds.TakeAction(ctx, commands.TakeActionInput{
			ReservationID: 8, UserID: "user-1", CurrentStatus: "Pending", Action: "Confirm",
		}, s.actorID, "token")

		s.Require().NoError(err)
		s.Equal(&commands.TakeActionResult{
			ReservationID: 8,
			Action:        reservation.ActionConfirm,
			Previous:      reservation.StatusPending,
			Status:        reservation.StatusBooked,
		}, got)
	})

	s.Run("error: action not offered for the status", func() {
		_, err := s.cmds.TakeAction(ctx, commands.TakeActionInput{
			ReservationID: 8, UserID: "user-1", CurrentStatus: "Booked", Action: "Confirm",
		}, s.actorID, "token")

		s.True(errs.Is(err, commands.ErrActionNotAllowed))
		s.Contains(err.Error(), "Booked allows Cancel, MarkAsDone")
	})

	s.Run("error: malformed input", func() {
		cases := []commands.TakeActionInput{
			{ReservationID: 8, CurrentStatus: "Pending", Action: "Confirm"},
			{ReservationID: 8, UserID: "user-1", CurrentStatus: "Unknown", Action: "Confirm"},
			{ReservationID: 8, UserID: "user-1", CurrentStatus: "Pending", Action: "Explode"},
		}
		for _, in := range cases {
			_, err := s.cmds.TakeAction(ctx, in, s.actorID, "token")
			s.True(errs.Is(err, commands.ErrInvalidReservation), "input %+v", in)
		}
	})

	s.Run("error: venue API failure skips the event", func() {
		s.mockGateway.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("404"), errs.ErrUpstreamNotFound)).Times(1)

		_, err := s.cmds.TakeAction(ctx, commands.TakeActionInput{
			ReservationID: 8, UserID: "user-1", CurrentStatus: "Booked", Action: "Cancel",
		}, s.actorID, "token")

		s.True(errs.Is(err, errs.ErrUpstreamNotFound))
	})
}

func (s *ReservationCommandsTestSuite) TestInvalidateRates() {
	s.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	s.NoError(s.cmds.InvalidateRates(context.Background()))
}
