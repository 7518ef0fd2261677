//go:build unit || integration || e2e

package builder

import (
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/domain/reservation"
	reqdto "venue-admin/internal/handler/dto/request"
	"venue-admin/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID                      *int64
	UserID                  string
	EventType               string
	GuestCount              int
	Start                   time.Time
	End                     time.Time
	EffectiveEnd            *time.Time
	AddOns                  []pricing.AddOnSelection
	DiscountType            string
	DiscountAmount          decimal.Decimal
	DiscountPercentage      decimal.Decimal
	Status                  reservation.Status
	FullPackage             bool
	SecurityDepositRefunded bool
	TaxRate                 decimal.Decimal
	TotalPrice              decimal.Decimal
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID:     "2b0c0f0e-5d0a-4f3e-9c53-8f7c5f2d9a11",
		EventType:  "Wedding",
		GuestCount: 120,
		Start:      DefaultStart,
		End:        DefaultStart.Add(6 * time.Hour),
		Status:     reservation.StatusPending,
		TaxRate:    pricing.DefaultTaxRate,
		TotalPrice: decimal.RequireFromString("2193.5"),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildParams() (reservation.SubmissionParams, error) {
	discount, err := pricing.ParseDiscount(r.DiscountType, r.DiscountAmount, r.DiscountPercentage)
	if err != nil {
		return reservation.SubmissionParams{}, err
	}
	addOns, err := pricing.NewAddOnSelections(r.AddOns)
	if err != nil {
		return reservation.SubmissionParams{}, err
	}
	return reservation.SubmissionParams{
		ID:                      r.ID,
		UserID:                  r.UserID,
		EventType:               r.EventType,
		GuestCount:              r.GuestCount,
		Window:                  pricing.ReservationWindow{Start: r.Start, End: r.End, EffectiveEnd: r.EffectiveEnd},
		AddOns:                  addOns,
		Discount:                discount,
		Status:                  r.Status,
		FullPackage:             r.FullPackage,
		SecurityDepositRefunded: r.SecurityDepositRefunded,
		TaxRate:                 r.TaxRate,
	}, nil
}

func (r *ReservationBuilder) BuildDomain() (*reservation.Submission, error) {
	params, err := r.BuildParams()
	if err != nil {
		return nil, err
	}
	return reservation.NewSubmission(params)
}

func (r *ReservationBuilder) BuildSubmitInput() commands.SubmitReservationInput {
	taxRate := r.TaxRate
	return commands.SubmitReservationInput{
		QuoteInput: commands.QuoteInput{
			GuestCount:         r.GuestCount,
			StartingDateTime:   r.Start,
			EndingDateTime:     r.End,
			EffectiveEndingAt:  r.EffectiveEnd,
			AddOns:             r.AddOns,
			DiscountType:       r.DiscountType,
			DiscountAmount:     r.DiscountAmount,
			DiscountPercentage: r.DiscountPercentage,
			TaxRate:            &taxRate,
		},
		ID:                      r.ID,
		UserID:                  r.UserID,
		EventType:               r.EventType,
		Status:                  r.Status.String(),
		FullPackage:             r.FullPackage,
		SecurityDepositRefunded: r.SecurityDepositRefunded,
		TotalPrice:              r.TotalPrice,
	}
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	taxRate := r.TaxRate.InexactFloat64()
	addOns := make([]reqdto.AddOnQuantity, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, reqdto.AddOnQuantity{
			Name:     a.AddOn.Name,
			Price:    a.AddOn.Price.InexactFloat64(),
			Quantity: a.Quantity,
		})
	}
	return reqdto.ReservationRequest{
		QuoteRequest: reqdto.QuoteRequest{
			GuestCount:              r.GuestCount,
			StartingDateTime:        reqdto.NewDateTime(r.Start),
			EndingDateTime:          reqdto.NewDateTime(r.End),
			EffectiveEndingDateTime: reqdto.DateTimeFromPtr(r.EffectiveEnd),
			AddOns:                  addOns,
			Discount: reqdto.DiscountRequest{
				Type:       r.DiscountType,
				Amount:     r.DiscountAmount.InexactFloat64(),
				Percentage: r.DiscountPercentage.InexactFloat64(),
			},
			TaxRate: &taxRate,
		},
		UserID:                  r.UserID,
		EventType:               r.EventType,
		Status:                  r.Status.String(),
		FullPackage:             r.FullPackage,
		SecurityDepositRefunded: r.SecurityDepositRefunded,
		TotalPrice:              r.TotalPrice.InexactFloat64(),
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = &id
	return r
}

func (r *ReservationBuilder) WithGuestCount(n int) *ReservationBuilder {
	r.GuestCount = n
	return r
}

func (r *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *ReservationBuilder) WithEffectiveEnd(t time.Time) *ReservationBuilder {
	r.EffectiveEnd = &t
	return r
}

func (r *ReservationBuilder) WithAmountDiscount(amount string) *ReservationBuilder {
	r.DiscountType = string(pricing.DiscountAmount)
	r.DiscountAmount = decimal.RequireFromString(amount)
	r.DiscountPercentage = decimal.Zero
	return r
}

func (r *ReservationBuilder) WithTotalPrice(total string) *ReservationBuilder {
	r.TotalPrice = decimal.RequireFromString(total)
	return r
}

func (r *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}
