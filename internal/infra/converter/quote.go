package converter

import (
	"encoding/json"
	"fmt"
	"math"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/infra/db"
	"venue-admin/internal/pkg/pgconv"
	"venue-admin/internal/usecase/queries"
	"venue-admin/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

func QuoteToRow(q *shared.QuoteRecord) (db.QuoteRow, error) {
	if q.GuestCount > math.MaxInt32 || q.GuestCount < math.MinInt32 {
		return db.QuoteRow{}, fmt.Errorf("guest count %d does not fit the guest_count column", q.GuestCount)
	}
	addOns := q.AddOns
	if addOns == nil {
		addOns = pricing.AddOnSelections{}
	}
	addOnsJSON, err := json.Marshal(addOns)
	if err != nil {
		return db.QuoteRow{}, fmt.Errorf("marshal add-ons: %w", err)
	}
	breakdownJSON, err := json.Marshal(q.Result.Breakdown)
	if err != nil {
		return db.QuoteRow{}, fmt.Errorf("marshal breakdown: %w", err)
	}
	ratesJSON, err := json.Marshal(q.Rates)
	if err != nil {
		return db.QuoteRow{}, fmt.Errorf("marshal rates: %w", err)
	}

	return db.QuoteRow{
		ID:                 q.ID,
		ActorID:            q.ActorID,
		GuestCount:         int32(q.GuestCount),
		StartingAt:         pgconv.TimeToPgtype(q.Window.Start),
		EndingAt:           pgconv.TimeToPgtype(q.Window.End),
		EffectiveEndingAt:  pgconv.TimePtrToPgtype(q.Window.EffectiveEnd),
		AddOns:             addOnsJSON,
		DiscountType:       q.DiscountType,
		DiscountAmount:     pgconv.DecimalToText(q.DiscountAmount),
		DiscountPercentage: pgconv.DecimalToText(q.DiscountPercentage),
		TaxRate:            pgconv.DecimalToText(q.TaxRate),
		Subtotal:           pgconv.DecimalToText(q.Result.Subtotal),
		Discounted:         pgconv.DecimalToText(q.Result.Discounted),
		Tax:                pgconv.DecimalToText(q.Result.Tax),
		TotalPrice:         pgconv.DecimalToText(q.Result.TotalPrice),
		Breakdown:          breakdownJSON,
		Rates:              ratesJSON,
		CreatedAt:          pgconv.TimeToPgtype(q.CreatedAt),
	}, nil
}

func QuoteRowToView(row db.QuoteRow) (*queries.QuoteView, error) {
	var addOns []pricing.AddOnSelection
	if len(row.AddOns) > 0 {
		if err := json.Unmarshal(row.AddOns, &addOns); err != nil {
			return nil, fmt.Errorf("unmarshal add-ons: %w", err)
		}
	}

	var breakdown pricing.SubtotalBreakdown
	if err := json.Unmarshal(row.Breakdown, &breakdown); err != nil {
		return nil, fmt.Errorf("unmarshal breakdown: %w", err)
	}

	var rates pricing.RateTable
	if err := json.Unmarshal(row.Rates, &rates); err != nil {
		return nil, fmt.Errorf("unmarshal rates: %w", err)
	}

	amounts, err := parseDecimals(
		row.DiscountAmount, row.DiscountPercentage, row.TaxRate,
		row.Subtotal, row.Discounted, row.Tax, row.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	return &queries.QuoteView{
		ID:                 row.ID,
		ActorID:            row.ActorID,
		GuestCount:         int(row.GuestCount),
		StartingDateTime:   pgconv.TimeFromPgtype(row.StartingAt),
		EndingDateTime:     pgconv.TimeFromPgtype(row.EndingAt),
		EffectiveEndingAt:  pgconv.TimePtrFromPgtype(row.EffectiveEndingAt),
		AddOns:             addOns,
		DiscountType:       row.DiscountType,
		DiscountAmount:     amounts[0],
		DiscountPercentage: amounts[1],
		TaxRate:            amounts[2],
		Result: pricing.PricingResult{
			Subtotal:   amounts[3],
			Discounted: amounts[4],
			Tax:        amounts[5],
			TotalPrice: amounts[6],
			Breakdown:  breakdown,
		},
		Rates:     rates,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func parseDecimals(values ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := pgconv.DecimalFromText(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func QuoteListRowToItem(row db.QuoteListRow) (*queries.QuoteListItem, error) {
	amounts, err := parseDecimals(row.Subtotal, row.TotalPrice)
	if err != nil {
		return nil, err
	}
	return &queries.QuoteListItem{
		ID:         row.ID,
		GuestCount: int(row.GuestCount),
		StartingAt: pgconv.TimeFromPgtype(row.StartingAt),
		Subtotal:   amounts[0],
		TotalPrice: amounts[1],
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
