//go:build unit || integration || e2e

package builder

import (
	"time"

	"venue-admin/internal/domain/pricing"
	reqdto "venue-admin/internal/handler/dto/request"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/queries"
	"venue-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Friday 2024-03-15 18:00 UTC.
var DefaultStart = time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)

func DefaultRates() pricing.RateTable {
	return pricing.RateTable{
		SeatRate:             decimal.RequireFromString("2.5"),
		RegularFacilityRate:  decimal.NewFromInt(1500),
		SaturdayFacilityRate: decimal.NewFromInt(2000),
		CleaningFeeSmall:     decimal.NewFromInt(150),
		CleaningFeeLarge:     decimal.NewFromInt(250),
		OvertimeHourlyRate:   decimal.NewFromInt(150),
	}
}

type QuoteBuilder struct {
	GuestCount         int
	Start              time.Time
	End                time.Time
	EffectiveEnd       *time.Time
	AddOns             []pricing.AddOnSelection
	DiscountType       string
	DiscountAmount     decimal.Decimal
	DiscountPercentage decimal.Decimal
	TaxRate            decimal.Decimal
	Rates              pricing.RateTable
	ActorID            uuid.UUID
	CreatedAt          time.Time
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		GuestCount: 120,
		Start:      DefaultStart,
		End:        DefaultStart.Add(6 * time.Hour),
		TaxRate:    pricing.DefaultTaxRate,
		Rates:      DefaultRates(),
		ActorID:    uuid.New(),
		CreatedAt:  DefaultStart.Add(-24 * time.Hour),
	}
}

func (q *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(q)
	return q
}

// Build methods
func (q *QuoteBuilder) BuildDiscount() (pricing.Discount, error) {
	return pricing.ParseDiscount(q.DiscountType, q.DiscountAmount, q.DiscountPercentage)
}

func (q *QuoteBuilder) BuildWindow() pricing.ReservationWindow {
	return pricing.ReservationWindow{Start: q.Start, End: q.End, EffectiveEnd: q.EffectiveEnd}
}

func (q *QuoteBuilder) BuildInput() (pricing.Input, error) {
	discount, err := q.BuildDiscount()
	if err != nil {
		return pricing.Input{}, err
	}
	addOns, err := pricing.NewAddOnSelections(q.AddOns)
	if err != nil {
		return pricing.Input{}, err
	}
	return pricing.Input{
		GuestCount: q.GuestCount,
		Window:     q.BuildWindow(),
		AddOns:     addOns,
		Discount:   discount,
		TaxRate:    q.TaxRate,
		Rates:      q.Rates,
	}, nil
}

func (q *QuoteBuilder) BuildQuoteInput() commands.QuoteInput {
	taxRate := q.TaxRate
	return commands.QuoteInput{
		GuestCount:         q.GuestCount,
		StartingDateTime:   q.Start,
		EndingDateTime:     q.End,
		EffectiveEndingAt:  q.EffectiveEnd,
		AddOns:             q.AddOns,
		DiscountType:       q.DiscountType,
		DiscountAmount:     q.DiscountAmount,
		DiscountPercentage: q.DiscountPercentage,
		TaxRate:            &taxRate,
	}
}

func (q *QuoteBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	taxRate := q.TaxRate.InexactFloat64()
	addOns := make([]reqdto.AddOnQuantity, 0, len(q.AddOns))
	for _, a := range q.AddOns {
		addOns = append(addOns, reqdto.AddOnQuantity{
			Name:     a.AddOn.Name,
			Price:    a.AddOn.Price.InexactFloat64(),
			Quantity: a.Quantity,
		})
	}
	return reqdto.QuoteRequest{
		GuestCount:              q.GuestCount,
		StartingDateTime:        reqdto.NewDateTime(q.Start),
		EndingDateTime:          reqdto.NewDateTime(q.End),
		EffectiveEndingDateTime: reqdto.DateTimeFromPtr(q.EffectiveEnd),
		AddOns:                  addOns,
		Discount: reqdto.DiscountRequest{
			Type:       q.DiscountType,
			Amount:     q.DiscountAmount.InexactFloat64(),
			Percentage: q.DiscountPercentage.InexactFloat64(),
		},
		TaxRate: &taxRate,
	}
}

func (q *QuoteBuilder) BuildResult() pricing.PricingResult {
	in, err := q.BuildInput()
	if err != nil {
		panic(err)
	}
	return pricing.NewCalculator(time.UTC).Quote(in)
}

func (q *QuoteBuilder) BuildQuoteResult() *commands.QuoteResult {
	return &commands.QuoteResult{
		Result: q.BuildResult(),
		Rates:  q.Rates,
	}
}

func (q *QuoteBuilder) BuildView() *queries.QuoteView {
	res := q.BuildResult()
	discount, _ := q.BuildDiscount()
	return &queries.QuoteView{
		ID:                 uuid.New(),
		ActorID:            q.ActorID,
		GuestCount:         q.GuestCount,
		StartingDateTime:   q.Start,
		EndingDateTime:     q.End,
		EffectiveEndingAt:  q.EffectiveEnd,
		AddOns:             q.AddOns,
		DiscountType:       string(discount.Kind()),
		DiscountAmount:     discount.Amount(),
		DiscountPercentage: discount.Percentage(),
		TaxRate:            q.TaxRate,
		Result:             res,
		Rates:              q.Rates,
		CreatedAt:          q.CreatedAt,
	}
}

func (q *QuoteBuilder) BuildRecord() *shared.QuoteRecord {
	in, err := q.BuildInput()
	if err != nil {
		panic(err)
	}
	return &shared.QuoteRecord{
		ID:                 uuid.New(),
		ActorID:            q.ActorID,
		GuestCount:         q.GuestCount,
		Window:             in.Window,
		AddOns:             in.AddOns,
		DiscountType:       string(in.Discount.Kind()),
		DiscountAmount:     in.Discount.Amount(),
		DiscountPercentage: in.Discount.Percentage(),
		TaxRate:            q.TaxRate,
		Result:             q.BuildResult(),
		Rates:              q.Rates,
		CreatedAt:          q.CreatedAt,
	}
}

// Fluent builder methods
func (q *QuoteBuilder) WithGuestCount(n int) *QuoteBuilder {
	q.GuestCount = n
	return q
}

func (q *QuoteBuilder) WithWindow(start, end time.Time) *QuoteBuilder {
	q.Start = start
	q.End = end
	return q
}

func (q *QuoteBuilder) WithEffectiveEnd(t time.Time) *QuoteBuilder {
	q.EffectiveEnd = &t
	return q
}

func (q *QuoteBuilder) WithAddOn(name string, price string, quantity int) *QuoteBuilder {
	q.AddOns = append(q.AddOns, pricing.AddOnSelection{
		AddOn:    pricing.AddOn{Name: name, Price: decimal.RequireFromString(price)},
		Quantity: quantity,
	})
	return q
}

func (q *QuoteBuilder) WithAmountDiscount(amount string) *QuoteBuilder {
	q.DiscountType = string(pricing.DiscountAmount)
	q.DiscountAmount = decimal.RequireFromString(amount)
	q.DiscountPercentage = decimal.Zero
	return q
}

func (q *QuoteBuilder) WithPercentageDiscount(pct string) *QuoteBuilder {
	q.DiscountType = string(pricing.DiscountPercentage)
	q.DiscountPercentage = decimal.RequireFromString(pct)
	q.DiscountAmount = decimal.Zero
	return q
}

func (q *QuoteBuilder) WithRates(r pricing.RateTable) *QuoteBuilder {
	q.Rates = r
	return q
}

func (q *QuoteBuilder) WithActorID(id uuid.UUID) *QuoteBuilder {
	q.ActorID = id
	return q
}
