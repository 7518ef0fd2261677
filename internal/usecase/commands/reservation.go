package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/domain/reservation"
	"venue-admin/internal/pkg/clock"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidReservation = errs.New("invalid reservation")
	ErrPriceMismatch      = errs.New("submitted total does not match the computed total")
	ErrNegativeTotal      = errs.New("discount cannot exceed the subtotal")
	ErrActionNotAllowed   = errs.New("action not allowed for the current status")
)

// PriceMismatchError reports both totals so the dashboard can refresh its quote.
type PriceMismatchError struct {
	Submitted decimal.Decimal
	Expected  decimal.Decimal
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("submitted total %s does not match computed total %s", e.Submitted.StringFixed(2), e.Expected.StringFixed(2))
}

func (e *PriceMismatchError) Is(target error) bool {
	return target == ErrPriceMismatch
}

type SubmitReservationInput struct {
	QuoteInput
	ID                      *int64
	UserID                  string
	EventType               string
	Status                  string
	FullPackage             bool
	SecurityDepositRefunded bool
	TotalPrice              decimal.Decimal
}

type SubmitReservationResult struct {
	Reservation *shared.ForwardedReservation
	Pricing     pricing.PricingResult
	Created     bool
}

type TakeActionInput struct {
	ReservationID int64
	UserID        string
	CurrentStatus string
	Action        string
}

type TakeActionResult struct {
	ReservationID int64
	Action        reservation.Action
	Previous      reservation.Status
	Status        reservation.Status
}

type ReservationPricedEvent struct {
	ReservationID *int64          `json:"reservationId,omitempty"`
	UserID        string          `json:"userId"`
	Created       bool            `json:"created"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

type StatusChangedEvent struct {
	ReservationID int64  `json:"reservationId"`
	UserID        string `json:"userId"`
	Action        string `json:"action"`
	From          string `json:"from"`
	To            string `json:"to"`
}

type ReservationCommands interface {
	Submit(ctx context.Context, in SubmitReservationInput, actorID uuid.UUID, token string) (*SubmitReservationResult, error)
	TakeAction(ctx context.Context, in TakeActionInput, actorID uuid.UUID, token string) (*TakeActionResult, error)
	InvalidateRates(ctx context.Context) error
}

type reservationCommandsImpl struct {
	rates     shared.RateProvider
	cache     shared.RateCache
	gateway   shared.ReservationGateway
	publisher shared.EventPublisher
	calc      *pricing.Calculator
	clock     clock.Clock
	settings  Settings
}

func NewReservationCommands(
	rates shared.RateProvider,
	cache shared.RateCache,
	gateway shared.ReservationGateway,
	publisher shared.EventPublisher,
	calc *pricing.Calculator,
	clock clock.Clock,
	settings Settings,
) ReservationCommands {
	return &reservationCommandsImpl{
		rates:     rates,
		cache:     cache,
		gateway:   gateway,
		publisher: publisher,
		calc:      calc,
		clock:     clock,
		settings:  settings,
	}
}

// Submit re-prices the reservation with the current rate table before it is
// forwarded. The client total must match within the configured tolerance.
func (r *reservationCommandsImpl) Submit(
	ctx context.Context,
	in SubmitReservationInput,
	actorID uuid.UUID,
	token string,
) (*SubmitReservationResult, error) {
	sub, err := r.buildSubmission(in)
	if err != nil {
		return nil, err
	}

	rates, err := r.rates.Current(ctx)
	if err != nil {
		return nil, err
	}

	result, err := sub.Price(r.calc, rates)
	if err != nil {
		if errs.Is(err, reservation.ErrNegativeTotal) {
			return nil, errs.Mark(err, ErrNegativeTotal)
		}
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	if in.TotalPrice.Sub(result.TotalPrice).Abs().GreaterThan(r.settings.PriceTolerance) {
		return nil, &PriceMismatchError{Submitted: in.TotalPrice, Expected: result.TotalPrice}
	}

	payload := toReservationPayload(sub, result)

	var forwarded *shared.ForwardedReservation
	if sub.IsUpdate() {
		forwarded, err = r.gateway.Update(ctx, token, payload)
	} else {
		forwarded, err = r.gateway.Create(ctx, token, payload)
	}
	if err != nil {
		return nil, err
	}

	id := forwarded.ID
	if id == nil {
		id = sub.ID()
	}
	r.publish(ctx, shared.EventReservationPriced, actorID, ReservationPricedEvent{
		ReservationID: id,
		UserID:        sub.UserID(),
		Created:       !sub.IsUpdate(),
		Subtotal:      result.Subtotal,
		TotalPrice:    result.TotalPrice,
	})

	return &SubmitReservationResult{
		Reservation: forwarded,
		Pricing:     result,
		Created:     !sub.IsUpdate(),
	}, nil
}

func (r *reservationCommandsImpl) TakeAction(
	ctx context.Context,
	in TakeActionInput,
	actorID uuid.UUID,
	token string,
) (*TakeActionResult, error) {
	if in.UserID == "" {
		return nil, errs.Mark(reservation.ErrUserRequired, ErrInvalidReservation)
	}

	current, err := reservation.ParseStatus(in.CurrentStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	action, err := reservation.ParseAction(in.Action)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	next, err := reservation.NextStatus(current, action)
	if err != nil {
		if errs.Is(err, reservation.ErrActionNotAllowed) {
			return nil, errs.Mark(errs.Wrap(err, allowedActionsHint(current)), ErrActionNotAllowed)
		}
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	if err := r.gateway.UpdateStatus(ctx, token, in.UserID, in.ReservationID, action); err != nil {
		return nil, err
	}

	r.publish(ctx, shared.EventReservationStatusChanged, actorID, StatusChangedEvent{
		ReservationID: in.ReservationID,
		UserID:        in.UserID,
		Action:        action.String(),
		From:          current.String(),
		To:            next.String(),
	})

	return &TakeActionResult{
		ReservationID: in.ReservationID,
		Action:        action,
		Previous:      current,
		Status:        next,
	}, nil
}

func allowedActionsHint(s reservation.Status) string {
	allowed := reservation.AllowedActions(s)
	if len(allowed) == 0 {
		return s.String() + " allows no action"
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = a.String()
	}
	return s.String() + " allows " + strings.Join(names, ", ")
}

func (r *reservationCommandsImpl) InvalidateRates(ctx context.Context) error {
	return r.cache.Invalidate(ctx)
}

func (r *reservationCommandsImpl) buildSubmission(in SubmitReservationInput) (*reservation.Submission, error) {
	var status reservation.Status
	if in.Status != "" {
		s, err := reservation.ParseStatus(in.Status)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidReservation)
		}
		status = s
	}

	discount, err := pricing.ParseDiscount(in.DiscountType, in.DiscountAmount, in.DiscountPercentage)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	addOns, err := pricing.NewAddOnSelections(in.AddOns)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	taxRate := r.settings.TaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	sub, err := reservation.NewSubmission(reservation.SubmissionParams{
		ID:         in.ID,
		UserID:     in.UserID,
		EventType:  in.EventType,
		GuestCount: in.GuestCount,
		Window: pricing.ReservationWindow{
			Start:        in.StartingDateTime,
			End:          in.EndingDateTime,
			EffectiveEnd: in.EffectiveEndingAt,
		},
		AddOns:                  addOns,
		Discount:                discount,
		Status:                  status,
		FullPackage:             in.FullPackage,
		SecurityDepositRefunded: in.SecurityDepositRefunded,
		TaxRate:                 taxRate,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}
	return sub, nil
}

// Event delivery is best effort; the reservation already reached the venue API.
func (r *reservationCommandsImpl) publish(ctx context.Context, eventType string, actorID uuid.UUID, payload any) {
	event := shared.Event{
		Type:       eventType,
		OccurredAt: r.clock.Now(),
		ActorID:    actorID,
		Payload:    payload,
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish event", "type", eventType, "error", err.Error())
	}
}

func toReservationPayload(sub *reservation.Submission, result pricing.PricingResult) shared.ReservationPayload {
	addOns := make([]shared.AddOnLinePayload, 0, len(sub.AddOns()))
	for _, sel := range sub.AddOns() {
		addOns = append(addOns, shared.AddOnLinePayload{
			AddOn: shared.AddOnPayload{
				ID:    sel.AddOn.ID,
				Name:  sel.AddOn.Name,
				Price: sel.AddOn.Price.InexactFloat64(),
			},
			Quantity: sel.Quantity,
		})
	}

	frozen := result.Breakdown.Frozen()
	window := sub.Window()
	discount := sub.Discount()

	return shared.ReservationPayload{
		ID:                      sub.ID(),
		UserID:                  sub.UserID(),
		StartingDateTime:        window.Start,
		EndingDateTime:          window.End,
		EffectiveEndingDateTime: window.EffectiveEnd,
		EventType:               sub.EventType().String(),
		NumberOfSeats:           sub.GuestCount().Int(),
		AddOns:                  addOns,
		AddOnsTotalCost:         result.Breakdown.AddOnsTotal.InexactFloat64(),
		Status:                  sub.Status().String(),
		FullPackage:             sub.FullPackage(),
		SecurityDepositRefunded: sub.SecurityDepositRefunded(),
		TaxRate:                 sub.TaxRate().InexactFloat64(),
		TotalPrice:              result.TotalPrice.InexactFloat64(),
		Discount: shared.DiscountPayload{
			Type:       string(discount.Kind()),
			Amount:     discount.Amount().InexactFloat64(),
			Percentage: discount.Percentage().InexactFloat64(),
		},
		Rates: shared.RatesPayload{
			CleaningRate: frozen.CleaningRate.InexactFloat64(),
			FacilityRate: frozen.FacilityRate.InexactFloat64(),
			OvertimeRate: frozen.OvertimeRate.InexactFloat64(),
			SeatRate:     frozen.SeatRate.InexactFloat64(),
		},
	}
}
