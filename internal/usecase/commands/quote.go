package commands

import (
	"context"
	"math"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/pkg/clock"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuote            = errs.New("invalid quote input")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Settings carries the venue-wide pricing parameters.
type Settings struct {
	TaxRate        decimal.Decimal
	PriceTolerance decimal.Decimal
}

// QuoteInput mirrors the pricing fields of the reservation form. A nil
// TaxRate means the venue default. StoredRates are the rates an existing
// reservation was priced with; previews of it keep using them.
type QuoteInput struct {
	GuestCount         int
	StartingDateTime   time.Time
	EndingDateTime     time.Time
	EffectiveEndingAt  *time.Time
	AddOns             []pricing.AddOnSelection
	DiscountType       string
	DiscountAmount     decimal.Decimal
	DiscountPercentage decimal.Decimal
	TaxRate            *decimal.Decimal
	StoredRates        *pricing.StoredRates
}

type QuoteResult struct {
	ID        uuid.UUID
	Result    pricing.PricingResult
	Rates     pricing.RateTable
	CreatedAt time.Time
}

type QuoteCommands interface {
	Preview(ctx context.Context, in QuoteInput) (*QuoteResult, error)
	Issue(ctx context.Context, in QuoteInput, actorID uuid.UUID) (*QuoteResult, error)
}

type quoteCommandsImpl struct {
	rates    shared.RateProvider
	calc     *pricing.Calculator
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewQuoteCommands(
	rates shared.RateProvider,
	calc *pricing.Calculator,
	uow shared.UnitOfWork,
	clock clock.Clock,
	settings Settings,
) QuoteCommands {
	return &quoteCommandsImpl{
		rates:    rates,
		calc:     calc,
		uow:      uow,
		clock:    clock,
		settings: settings,
	}
}

// Preview prices a form that may still be incomplete, so missing dates and
// non-positive guest counts are priced rather than rejected.
func (q *quoteCommandsImpl) Preview(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	input, err := q.buildInput(ctx, in)
	if err != nil {
		return nil, err
	}
	return &QuoteResult{
		Result: q.calc.Quote(input),
		Rates:  input.Rates,
	}, nil
}

func (q *quoteCommandsImpl) Issue(ctx context.Context, in QuoteInput, actorID uuid.UUID) (*QuoteResult, error) {
	input, err := q.buildInput(ctx, in)
	if err != nil {
		return nil, err
	}

	record := &shared.QuoteRecord{
		ID:                 uuid.New(),
		ActorID:            actorID,
		GuestCount:         input.GuestCount,
		Window:             input.Window,
		AddOns:             input.AddOns,
		DiscountType:       string(input.Discount.Kind()),
		DiscountAmount:     input.Discount.Amount(),
		DiscountPercentage: input.Discount.Percentage(),
		TaxRate:            input.TaxRate,
		Result:             q.calc.Quote(input),
		Rates:              input.Rates,
		CreatedAt:          q.clock.Now(),
	}

	var saved *shared.QuoteRecord
	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		saved, cerr = tx.Quotes().Create(ctx, tx.DB(), record)
		return cerr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &QuoteResult{
		ID:        saved.ID,
		Result:    saved.Result,
		Rates:     saved.Rates,
		CreatedAt: saved.CreatedAt,
	}, nil
}

func (q *quoteCommandsImpl) buildInput(ctx context.Context, in QuoteInput) (pricing.Input, error) {
	// Issued quotes store the count in an int4 column.
	if in.GuestCount > math.MaxInt32 {
		return pricing.Input{}, errs.Mark(errs.New("guest count out of range"), ErrInvalidQuote)
	}

	discount, err := pricing.ParseDiscount(in.DiscountType, in.DiscountAmount, in.DiscountPercentage)
	if err != nil {
		return pricing.Input{}, errs.Mark(err, ErrInvalidQuote)
	}

	addOns, err := pricing.NewAddOnSelections(in.AddOns)
	if err != nil {
		return pricing.Input{}, errs.Mark(err, ErrInvalidQuote)
	}

	taxRate := q.taxRate(in.TaxRate)
	if taxRate.IsNegative() {
		return pricing.Input{}, errs.Mark(errs.New("tax rate cannot be negative"), ErrInvalidQuote)
	}

	if in.StoredRates != nil {
		if err := in.StoredRates.Validate(); err != nil {
			return pricing.Input{}, errs.Mark(err, ErrInvalidQuote)
		}
	}

	rates, err := q.rates.Current(ctx)
	if err != nil {
		return pricing.Input{}, err
	}

	return pricing.Input{
		GuestCount: in.GuestCount,
		Window: pricing.ReservationWindow{
			Start:        in.StartingDateTime,
			End:          in.EndingDateTime,
			EffectiveEnd: in.EffectiveEndingAt,
		},
		AddOns:   addOns,
		Discount: discount,
		TaxRate:  taxRate,
		Rates:    rates,
		Stored:   in.StoredRates,
	}, nil
}

func (q *quoteCommandsImpl) taxRate(requested *decimal.Decimal) decimal.Decimal {
	if requested != nil {
		return *requested
	}
	return q.settings.TaxRate
}
