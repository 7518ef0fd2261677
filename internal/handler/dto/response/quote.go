package response

import (
	"errors"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money leaves the API as JSON numbers, the form the dashboard reads.
var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.Float64,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errors.New("expected decimal.Decimal")
				}
				return d.InexactFloat64(), nil
			},
		},
	},
}

type OvertimeResponse struct {
	Hours        float64 `json:"hours"`
	TotalCost    float64 `json:"totalCost"`
	OvertimeRate float64 `json:"overtimeRate"`
}

type SeatsResponse struct {
	SeatsCount    int     `json:"seatsCount"`
	SeatPrice     float64 `json:"seatPrice"`
	SeatRateTotal float64 `json:"seatRateTotal"`
}

type BreakdownResponse struct {
	AddOnsTotal          float64          `json:"addOnsTotal"`
	FacilityRental       float64          `json:"facilityRental"`
	FacilityCleaningFees float64          `json:"facilityCleaningFees"`
	Overtime             OvertimeResponse `json:"overtime"`
	Seats                SeatsResponse    `json:"seats"`
}

type PricingResponse struct {
	Subtotal   float64           `json:"subtotal"`
	Discounted float64           `json:"discounted"`
	Tax        float64           `json:"tax"`
	TotalPrice float64           `json:"totalPrice"`
	Breakdown  BreakdownResponse `json:"subtotalBreakdown"`
}

type RatesResponse struct {
	SeatRate             float64 `json:"seatRate"`
	RegularFacilityRate  float64 `json:"regularFacilityRate"`
	SaturdayFacilityRate float64 `json:"saturdayFacilityRate"`
	CleaningFeeSmall     float64 `json:"cleaningFeeSmall"`
	CleaningFeeLarge     float64 `json:"cleaningFeeLarge"`
	OvertimeHourlyRate   float64 `json:"overtimeHourlyRate"`
}

type QuoteResponse struct {
	ID        *uuid.UUID      `json:"id,omitempty"`
	Pricing   PricingResponse `json:"pricing"`
	Rates     RatesResponse   `json:"rates"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
}

type AddOnLineResponse struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type DiscountResponse struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type QuoteDetailResponse struct {
	ID                      uuid.UUID           `json:"id"`
	GuestCount              int                 `json:"numberOfSeats"`
	StartingDateTime        time.Time           `json:"startingDateTime"`
	EndingDateTime          time.Time           `json:"endingDateTime"`
	EffectiveEndingDateTime *time.Time          `json:"effectiveEndingDateTime,omitempty"`
	AddOns                  []AddOnLineResponse `json:"addOns"`
	Discount                DiscountResponse    `json:"discount"`
	TaxRate                 float64             `json:"taxRate"`
	Pricing                 PricingResponse     `json:"pricing"`
	Rates                   RatesResponse       `json:"rates"`
	CreatedAt               time.Time           `json:"createdAt"`
}

type QuoteListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	GuestCount int       `json:"numberOfSeats"`
	StartingAt time.Time `json:"startingDateTime"`
	Subtotal   float64   `json:"subtotal"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type QuoteListResponse struct {
	Quotes     []*QuoteListItemResponse `json:"quotes"`
	NextCursor *string                  `json:"next_cursor,omitempty"`
}

func FromPricingResult(r pricing.PricingResult) (PricingResponse, error) {
	var out PricingResponse
	if err := copier.CopyWithOption(&out, &r, copyOpts); err != nil {
		return PricingResponse{}, err
	}
	return out, nil
}

func FromRateTable(r pricing.RateTable) (RatesResponse, error) {
	var out RatesResponse
	if err := copier.CopyWithOption(&out, &r, copyOpts); err != nil {
		return RatesResponse{}, err
	}
	return out, nil
}

// FromQuoteResult leaves id and createdAt out for previews.
func FromQuoteResult(r *commands.QuoteResult) (*QuoteResponse, error) {
	p, err := FromPricingResult(r.Result)
	if err != nil {
		return nil, err
	}
	rates, err := FromRateTable(r.Rates)
	if err != nil {
		return nil, err
	}

	resp := &QuoteResponse{Pricing: p, Rates: rates}
	if r.ID != uuid.Nil {
		id := r.ID
		created := r.CreatedAt
		resp.ID = &id
		resp.CreatedAt = &created
	}
	return resp, nil
}

func FromQuoteView(v *queries.QuoteView) (*QuoteDetailResponse, error) {
	p, err := FromPricingResult(v.Result)
	if err != nil {
		return nil, err
	}
	rates, err := FromRateTable(v.Rates)
	if err != nil {
		return nil, err
	}

	addOns := make([]AddOnLineResponse, len(v.AddOns))
	for i, a := range v.AddOns {
		addOns[i] = AddOnLineResponse{
			ID:       a.AddOn.ID,
			Name:     a.AddOn.Name,
			Price:    a.AddOn.Price.InexactFloat64(),
			Quantity: a.Quantity,
		}
	}

	return &QuoteDetailResponse{
		ID:                      v.ID,
		GuestCount:              v.GuestCount,
		StartingDateTime:        v.StartingDateTime,
		EndingDateTime:          v.EndingDateTime,
		EffectiveEndingDateTime: v.EffectiveEndingAt,
		AddOns:                  addOns,
		Discount: DiscountResponse{
			Type:       v.DiscountType,
			Amount:     v.DiscountAmount.InexactFloat64(),
			Percentage: v.DiscountPercentage.InexactFloat64(),
		},
		TaxRate:   v.TaxRate.InexactFloat64(),
		Pricing:   p,
		Rates:     rates,
		CreatedAt: v.CreatedAt,
	}, nil
}

func FromQuoteList(items []*queries.QuoteListItem, next *queries.Cursor) (*QuoteListResponse, error) {
	out := make([]*QuoteListItemResponse, 0, len(items))
	if err := copier.CopyWithOption(&out, &items, copyOpts); err != nil {
		return nil, err
	}

	resp := &QuoteListResponse{Quotes: out}
	if next != nil {
		after := next.After
		resp.NextCursor = &after
	}
	return resp, nil
}
