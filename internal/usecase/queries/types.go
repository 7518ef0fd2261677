package queries

import (
	"time"

	"venue-admin/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteView is the read model of an issued quote.
type QuoteView struct {
	ID                 uuid.UUID
	ActorID            uuid.UUID
	GuestCount         int
	StartingDateTime   time.Time
	EndingDateTime     time.Time
	EffectiveEndingAt  *time.Time
	AddOns             []pricing.AddOnSelection
	DiscountType       string
	DiscountAmount     decimal.Decimal
	DiscountPercentage decimal.Decimal
	TaxRate            decimal.Decimal
	Result             pricing.PricingResult
	Rates              pricing.RateTable
	CreatedAt          time.Time
}

type QuoteListItem struct {
	ID         uuid.UUID
	GuestCount int
	StartingAt time.Time
	Subtotal   decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}
