package request

import (
	"strings"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type AddOnQuantity struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"gte=0"`
}

type DiscountRequest struct {
	Type       string  `json:"type" binding:"discount_type"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
}

// StoredRatesRequest matches the "rates" object the venue API keeps on a
// reservation.
type StoredRatesRequest struct {
	CleaningRate float64 `json:"cleaningRate" binding:"gte=0"`
	FacilityRate float64 `json:"facilityRate" binding:"gte=0"`
	OvertimeRate float64 `json:"overtimeRate" binding:"gte=0"`
	SeatRate     float64 `json:"seatRate" binding:"gte=0"`
}

// QuoteRequest carries the pricing fields of the reservation form. Dates may
// be missing while the form is being filled in.
type QuoteRequest struct {
	GuestCount              int                 `json:"numberOfSeats"`
	StartingDateTime        DateTime            `json:"startingDateTime" swaggertype:"string" format:"date-time"`
	EndingDateTime          DateTime            `json:"endingDateTime" swaggertype:"string" format:"date-time"`
	EffectiveEndingDateTime DateTime            `json:"effectiveEndingDateTime,omitzero" swaggertype:"string" format:"date-time"`
	AddOns                  []AddOnQuantity     `json:"addOns" binding:"omitempty,dive"`
	Discount                DiscountRequest     `json:"discount"`
	TaxRate                 *float64            `json:"taxRate,omitempty" binding:"omitempty,gte=0"`
	Rates                   *StoredRatesRequest `json:"rates,omitempty"`
}

func (r QuoteRequest) ToInput() commands.QuoteInput {
	addOns := make([]pricing.AddOnSelection, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, pricing.AddOnSelection{
			AddOn: pricing.AddOn{
				ID:    a.ID,
				Name:  strings.TrimSpace(a.Name),
				Price: decimal.NewFromFloat(a.Price),
			},
			Quantity: a.Quantity,
		})
	}

	var taxRate *decimal.Decimal
	if r.TaxRate != nil {
		t := decimal.NewFromFloat(*r.TaxRate)
		taxRate = &t
	}

	var stored *pricing.StoredRates
	if r.Rates != nil {
		stored = &pricing.StoredRates{
			CleaningRate: decimal.NewFromFloat(r.Rates.CleaningRate),
			FacilityRate: decimal.NewFromFloat(r.Rates.FacilityRate),
			OvertimeRate: decimal.NewFromFloat(r.Rates.OvertimeRate),
			SeatRate:     decimal.NewFromFloat(r.Rates.SeatRate),
		}
	}

	return commands.QuoteInput{
		GuestCount:         r.GuestCount,
		StartingDateTime:   r.StartingDateTime.Time,
		EndingDateTime:     r.EndingDateTime.Time,
		EffectiveEndingAt:  r.EffectiveEndingDateTime.Ptr(),
		AddOns:             addOns,
		DiscountType:       r.Discount.Type,
		DiscountAmount:     decimal.NewFromFloat(r.Discount.Amount),
		DiscountPercentage: decimal.NewFromFloat(r.Discount.Percentage),
		TaxRate:            taxRate,
		StoredRates:        stored,
	}
}
