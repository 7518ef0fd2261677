package shared

import (
	"context"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RateProvider interface {
	Current(ctx context.Context) (pricing.RateTable, error)
}

// CatalogClient reads the add-ons catalog of the venue API.
type CatalogClient interface {
	ListAddOns(ctx context.Context) ([]pricing.AddOn, error)
}

// ReservationGateway forwards reservations to the venue API. The bearer token
// of the caller is passed through unchanged.
type ReservationGateway interface {
	Create(ctx context.Context, token string, payload ReservationPayload) (*ForwardedReservation, error)
	Update(ctx context.Context, token string, payload ReservationPayload) (*ForwardedReservation, error)
	UpdateStatus(ctx context.Context, token, userID string, reservationID int64, action reservation.Action) error
}

// RateCache returns (nil, nil) on a miss.
type RateCache interface {
	Get(ctx context.Context) (*pricing.RateTable, error)
	Set(ctx context.Context, rates pricing.RateTable) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

const (
	EventReservationPriced        = "reservation.priced"
	EventReservationStatusChanged = "reservation.status_changed"
)

type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	ActorID    uuid.UUID `json:"actorId"`
	Payload    any       `json:"payload"`
}

type AddOnPayload struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AddOnLinePayload struct {
	AddOn    AddOnPayload `json:"addOn"`
	Quantity int          `json:"quantity"`
}

type DiscountPayload struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type RatesPayload struct {
	CleaningRate float64 `json:"cleaningRate"`
	FacilityRate float64 `json:"facilityRate"`
	OvertimeRate float64 `json:"overtimeRate"`
	SeatRate     float64 `json:"seatRate"`
}

// ReservationPayload is the reservation JSON the venue API accepts.
type ReservationPayload struct {
	ID                      *int64             `json:"id,omitempty"`
	UserID                  string             `json:"userId"`
	StartingDateTime        time.Time          `json:"startingDateTime"`
	EndingDateTime          time.Time          `json:"endingDateTime"`
	EffectiveEndingDateTime *time.Time         `json:"effectiveEndingDateTime"`
	EventType               string             `json:"eventType"`
	NumberOfSeats           int                `json:"numberOfSeats"`
	AddOns                  []AddOnLinePayload `json:"addOns"`
	AddOnsTotalCost         float64            `json:"addOnsTotalCost"`
	Status                  string             `json:"status"`
	FullPackage             bool               `json:"fullPackage"`
	SecurityDepositRefunded bool               `json:"securityDepositRefunded"`
	TaxRate                 float64            `json:"taxRate"`
	TotalPrice              float64            `json:"totalPrice"`
	Discount                DiscountPayload    `json:"discount"`
	Rates                   RatesPayload       `json:"rates"`
}

// ForwardedReservation is what the venue API echoes back. Body keeps the raw
// JSON so fields this service does not model survive the round trip.
type ForwardedReservation struct {
	ID     *int64
	Status string
	Body   []byte
}

// QuoteRecord is the write model of an issued quote.
type QuoteRecord struct {
	ID                 uuid.UUID
	ActorID            uuid.UUID
	GuestCount         int
	Window             pricing.ReservationWindow
	AddOns             pricing.AddOnSelections
	DiscountType       string
	DiscountAmount     decimal.Decimal
	DiscountPercentage decimal.Decimal
	TaxRate            decimal.Decimal
	Result             pricing.PricingResult
	Rates              pricing.RateTable
	CreatedAt          time.Time
}
