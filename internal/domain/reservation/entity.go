package reservation

import (
	"errors"
	"strings"

	"venue-admin/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus           = errors.New("invalid reservation status")
	ErrInvalidAction           = errors.New("invalid reservation action")
	ErrActionNotAllowed        = errors.New("action not allowed for the current status")
	ErrGuestCountNotPositive   = errors.New("guest count must be positive number")
	ErrGuestCountTooLarge      = errors.New("the facility maximum seats capacity is 200")
	ErrEventTypeRequired       = errors.New("event type is required")
	ErrUserRequired            = errors.New("user is required")
	ErrWindowRequired          = errors.New("starting and ending date and time are required")
	ErrEndBeforeStart          = errors.New("ending date and time must be after the starting date and time")
	ErrEffectiveEndBeforeStart = errors.New("effective ending date and time must be after the starting date and time")
	ErrNegativeTotal           = errors.New("discount cannot exceed the subtotal")
	ErrNegativeTaxRate         = errors.New("tax rate cannot be negative")
)

type SubmissionParams struct {
	ID                      *int64
	UserID                  string
	EventType               string
	GuestCount              int
	Window                  pricing.ReservationWindow
	AddOns                  pricing.AddOnSelections
	Discount                pricing.Discount
	Status                  Status
	FullPackage             bool
	SecurityDepositRefunded bool
	TaxRate                 decimal.Decimal
}

// Submission is a reservation about to be sent to the venue API.
type Submission struct {
	id                      *int64
	userID                  string
	eventType               EventType
	guestCount              GuestCount
	window                  pricing.ReservationWindow
	addOns                  pricing.AddOnSelections
	discount                pricing.Discount
	status                  Status
	fullPackage             bool
	securityDepositRefunded bool
	taxRate                 decimal.Decimal
}

func NewSubmission(p SubmissionParams) (*Submission, error) {
	userID := strings.TrimSpace(p.UserID)
	if userID == "" {
		return nil, ErrUserRequired
	}

	eventType, err := NewEventType(p.EventType)
	if err != nil {
		return nil, err
	}

	guests, err := NewGuestCount(p.GuestCount)
	if err != nil {
		return nil, err
	}

	window, err := NewWindow(p.Window.Start, p.Window.End, p.Window.EffectiveEnd)
	if err != nil {
		return nil, err
	}

	status := p.Status
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if p.TaxRate.IsNegative() {
		return nil, ErrNegativeTaxRate
	}

	return &Submission{
		id:                      p.ID,
		userID:                  userID,
		eventType:               eventType,
		guestCount:              guests,
		window:                  window,
		addOns:                  p.AddOns,
		discount:                p.Discount,
		status:                  status,
		fullPackage:             p.FullPackage,
		securityDepositRefunded: p.SecurityDepositRefunded,
		taxRate:                 p.TaxRate,
	}, nil
}

// Price runs the calculator and rejects discounts larger than the subtotal.
func (s *Submission) Price(calc *pricing.Calculator, rates pricing.RateTable) (pricing.PricingResult, error) {
	result := calc.Quote(pricing.Input{
		GuestCount: s.guestCount.Int(),
		Window:     s.window,
		AddOns:     s.addOns,
		Discount:   s.discount,
		TaxRate:    s.taxRate,
		Rates:      rates,
	})
	if result.IsNegative() {
		return result, ErrNegativeTotal
	}
	return result, nil
}

func (s *Submission) IsUpdate() bool {
	return s.id != nil
}

func (s *Submission) ID() *int64                       { return s.id }
func (s *Submission) UserID() string                   { return s.userID }
func (s *Submission) EventType() EventType             { return s.eventType }
func (s *Submission) GuestCount() GuestCount           { return s.guestCount }
func (s *Submission) Window() pricing.ReservationWindow { return s.window }
func (s *Submission) AddOns() pricing.AddOnSelections  { return s.addOns }
func (s *Submission) Discount() pricing.Discount       { return s.discount }
func (s *Submission) Status() Status                   { return s.status }
func (s *Submission) FullPackage() bool                { return s.fullPackage }
func (s *Submission) SecurityDepositRefunded() bool    { return s.securityDepositRefunded }
func (s *Submission) TaxRate() decimal.Decimal         { return s.taxRate }
