package request

import (
	"strings"

	"venue-admin/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ReservationRequest struct {
	QuoteRequest
	UserID                  string  `json:"userId" binding:"required"`
	EventType               string  `json:"eventType" binding:"required"`
	Status                  string  `json:"status,omitempty"`
	FullPackage             bool    `json:"fullPackage"`
	SecurityDepositRefunded bool    `json:"securityDepositRefunded"`
	TotalPrice              float64 `json:"totalPrice"`
}

// ToInput attaches the reservation id from the path, nil on creation.
func (r ReservationRequest) ToInput(id *int64) commands.SubmitReservationInput {
	return commands.SubmitReservationInput{
		QuoteInput:              r.QuoteRequest.ToInput(),
		ID:                      id,
		UserID:                  strings.TrimSpace(r.UserID),
		EventType:               strings.TrimSpace(r.EventType),
		Status:                  strings.TrimSpace(r.Status),
		FullPackage:             r.FullPackage,
		SecurityDepositRefunded: r.SecurityDepositRefunded,
		TotalPrice:              decimal.NewFromFloat(r.TotalPrice),
	}
}

type ActionRequest struct {
	UserID        string `json:"userId" binding:"required"`
	CurrentStatus string `json:"status" binding:"required"`
	Action        string `json:"action" binding:"required"`
}

func (r ActionRequest) ToInput(reservationID int64) commands.TakeActionInput {
	return commands.TakeActionInput{
		ReservationID: reservationID,
		UserID:        strings.TrimSpace(r.UserID),
		CurrentStatus: r.CurrentStatus,
		Action:        r.Action,
	}
}
