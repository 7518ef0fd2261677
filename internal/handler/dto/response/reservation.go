package response

import (
	"encoding/json"

	"venue-admin/internal/domain/reservation"
	"venue-admin/internal/usecase/commands"
)

// ReservationResponse echoes what the venue API returned alongside the
// authoritative price.
type ReservationResponse struct {
	ID          *int64          `json:"id,omitempty"`
	Status      string          `json:"status,omitempty"`
	Pricing     PricingResponse `json:"pricing"`
	Reservation json.RawMessage `json:"reservation,omitempty"`
}

type ActionOption struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

// ActionResponse lists the actions offered from the new status so the
// dashboard can refresh its menu.
type ActionResponse struct {
	ReservationID  int64          `json:"reservationId"`
	Action         string         `json:"action"`
	PreviousStatus string         `json:"previousStatus"`
	Status         string         `json:"status"`
	NextActions    []ActionOption `json:"nextActions"`
}

func FromSubmitResult(r *commands.SubmitReservationResult) (*ReservationResponse, error) {
	p, err := FromPricingResult(r.Pricing)
	if err != nil {
		return nil, err
	}

	resp := &ReservationResponse{Pricing: p}
	if r.Reservation != nil {
		resp.ID = r.Reservation.ID
		resp.Status = r.Reservation.Status
		if json.Valid(r.Reservation.Body) {
			resp.Reservation = json.RawMessage(r.Reservation.Body)
		}
	}
	return resp, nil
}

func FromActionResult(r *commands.TakeActionResult) *ActionResponse {
	allowed := reservation.AllowedActions(r.Status)
	next := make([]ActionOption, 0, len(allowed))
	for _, a := range allowed {
		next = append(next, ActionOption{Action: a.String(), Label: a.Label()})
	}
	return &ActionResponse{
		ReservationID:  r.ReservationID,
		Action:         r.Action.String(),
		PreviousStatus: r.Previous.String(),
		Status:         r.Status.String(),
		NextActions:    next,
	}
}
