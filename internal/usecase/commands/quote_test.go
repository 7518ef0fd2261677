//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/infra/db"
	"venue-admin/internal/pkg/clock"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/queries"
	"venue-admin/internal/usecase/shared"
	"venue-admin/tests/common/builder"
	sharedmock "venue-admin/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type QuoteCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRates *sharedmock.MockRateProvider
	mockUoW   *sharedmock.MockUnitOfWork
	mockTx    *sharedmock.MockTx
	mockRepo  *sharedmock.MockQuoteRepository
	clock     *clock.MockClock
	cmds      commands.QuoteCommands
}

func (s *QuoteCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRates = sharedmock.NewMockRateProvider(s.mockCtrl)
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockRepo = sharedmock.NewMockQuoteRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))

	s.cmds = commands.NewQuoteCommands(
		s.mockRates,
		pricing.NewCalculator(time.UTC),
		s.mockUoW,
		s.clock,
		commands.Settings{TaxRate: pricing.DefaultTaxRate, PriceTolerance: decimal.RequireFromString("0.01")},
	)
}

func (s *QuoteCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteCommandsSuite(t *testing.T) {
	suite.Run(t, new(QuoteCommandsTestSuite))
}

func (s *QuoteCommandsTestSuite) expectTx() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(1)
	s.mockTx.EXPECT().Quotes().Return(s.mockRepo).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *QuoteCommandsTestSuite) TestPreview() {
	ctx := context.Background()

	s.Run("success: prices with the current rate table", func() {
		qb := builder.NewQuoteBuilder().WithAddOn("Chairs", "3", 10).WithAmountDiscount("100")
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)

		got, err := s.cmds.Preview(ctx, qb.BuildQuoteInput())

		s.Require().NoError(err)
		s.Equal(uuid.Nil, got.ID)
		if diff := cmp.Diff(qb.BuildResult(), got.Result, decimalComparer); diff != "" {
			s.Failf("pricing mismatch", "(-want +got):\n%s", diff)
		}
		s.True(got.Rates.SeatRate.Equal(decimal.RequireFromString("2.5")))
	})

	s.Run("success: falls back to the venue tax rate", func() {
		in := builder.NewQuoteBuilder().BuildQuoteInput()
		in.TaxRate = nil
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)

		got, err := s.cmds.Preview(ctx, in)

		s.Require().NoError(err)
		s.True(got.Result.TotalPrice.Equal(decimal.RequireFromString("2193.5")), got.Result.TotalPrice.String())
	})

	s.Run("success: incomplete form is priced, not rejected", func() {
		in := commands.QuoteInput{GuestCount: 0}
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)

		got, err := s.cmds.Preview(ctx, in)

		s.Require().NoError(err)
		s.Equal(0, got.Result.Breakdown.Seats.SeatsCount)
		s.True(got.Result.Breakdown.Overtime.Hours.IsZero())
	})

	s.Run("success: stored rates of an existing reservation are kept", func() {
		in := builder.NewQuoteBuilder().BuildQuoteInput()
		in.StoredRates = &pricing.StoredRates{
			CleaningRate: decimal.NewFromInt(200),
			FacilityRate: decimal.NewFromInt(1400),
			OvertimeRate: decimal.NewFromInt(100),
			SeatRate:     decimal.NewFromInt(2),
		}
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)

		got, err := s.cmds.Preview(ctx, in)

		s.Require().NoError(err)
		// 120 seats x 2 + 1400 + 200
		s.True(got.Result.Subtotal.Equal(decimal.NewFromInt(1840)), got.Result.Subtotal.String())
		s.True(got.Result.Breakdown.FacilityRental.Equal(decimal.NewFromInt(1400)))
	})

	s.Run("error: negative stored rate", func() {
		in := builder.NewQuoteBuilder().BuildQuoteInput()
		in.StoredRates = &pricing.StoredRates{SeatRate: decimal.NewFromInt(-2)}

		_, err := s.cmds.Preview(ctx, in)

		s.True(errs.Is(err, commands.ErrInvalidQuote))
		s.True(errs.Is(err, pricing.ErrNegativeRate))
	})

	s.Run("error: invalid discount is rejected before reading rates", func() {
		in := builder.NewQuoteBuilder().BuildQuoteInput()
		in.DiscountType = string(pricing.DiscountPercentage)
		in.DiscountPercentage = decimal.NewFromInt(150)

		_, err := s.cmds.Preview(ctx, in)

		s.True(errs.Is(err, commands.ErrInvalidQuote))
		s.True(errs.Is(err, pricing.ErrPercentageOutOfRange))
	})

	s.Run("error: negative tax rate", func() {
		in := builder.NewQuoteBuilder().BuildQuoteInput()
		neg := decimal.NewFromInt(-1)
		in.TaxRate = &neg

		_, err := s.cmds.Preview(ctx, in)

		s.True(errs.Is(err, commands.ErrInvalidQuote))
	})

	s.Run("error: negative add-on quantity", func() {
		in := builder.NewQuoteBuilder().WithAddOn("Chairs", "3", -1).BuildQuoteInput()

		_, err := s.cmds.Preview(ctx, in)

		s.True(errs.Is(err, commands.ErrInvalidQuote))
	})

	s.Run("error: rates unavailable is passed through", func() {
		s.mockRates.EXPECT().Current(gomock.Any()).
			Return(pricing.RateTable{}, errs.Mark(errors.New("down"), queries.ErrRatesUnavailable)).Times(1)

		_, err := s.cmds.Preview(ctx, builder.NewQuoteBuilder().BuildQuoteInput())

		s.True(errs.Is(err, queries.ErrRatesUnavailable))
	})
}

func (s *QuoteCommandsTestSuite) TestIssue() {
	ctx := context.Background()
	actorID := uuid.New()

	s.Run("success: records the quote with the actor and clock time", func() {
		qb := builder.NewQuoteBuilder().WithPercentageDiscount("10")
		createdAt := s.clock.Now().Add(time.Second)

		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)
		s.expectTx()
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, q *shared.QuoteRecord) (*shared.QuoteRecord, error) {
				s.NotEqual(uuid.Nil, q.ID)
				s.Equal(actorID, q.ActorID)
				s.Equal(120, q.GuestCount)
				s.Equal(string(pricing.DiscountPercentage), q.DiscountType)
				s.True(q.DiscountPercentage.Equal(decimal.NewFromInt(10)))
				s.Equal(s.clock.Now(), q.CreatedAt)
				saved := *q
				saved.CreatedAt = createdAt
				return &saved, nil
			}).Times(1)

		got, err := s.cmds.Issue(ctx, qb.BuildQuoteInput(), actorID)

		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, got.ID)
		s.Equal(createdAt, got.CreatedAt)
		if diff := cmp.Diff(qb.BuildResult(), got.Result, decimalComparer); diff != "" {
			s.Failf("pricing mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("error: repository failure is marked as a database failure", func() {
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)
		s.expectTx()
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		_, err := s.cmds.Issue(ctx, builder.NewQuoteBuilder().BuildQuoteInput(), actorID)

		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	s.Run("error: guest count beyond the stored column range", func() {
		in := builder.NewQuoteBuilder().BuildQuoteInput()
		limit := int64(math.MaxInt32)
		in.GuestCount = int(limit + 1)

		_, err := s.cmds.Issue(ctx, in, actorID)

		s.True(errs.Is(err, commands.ErrInvalidQuote))
	})

	s.Run("error: invalid input never opens a transaction", func() {
		in := builder.NewQuoteBuilder().WithAmountDiscount("-5").BuildQuoteInput()

		_, err := s.cmds.Issue(ctx, in, actorID)

		s.True(errs.Is(err, commands.ErrInvalidQuote))
	})
}
