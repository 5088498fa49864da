package response

import (
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationCreatedResponse struct {
	Reservation *queries.ReservationView `json:"reservation"`
	// what the client hands to the payment provider
	AmountDue pricing.Money `json:"amountDue"`
}

type PaymentWebhookResponse struct {
	Received      bool       `json:"received"`
	Status        string     `json:"status"`
	Reason        string     `json:"reason,omitempty"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
}

func FromConfirmResult(r *commands.ConfirmResult) PaymentWebhookResponse {
	resp := PaymentWebhookResponse{Received: true, Status: "confirmed"}
	switch {
	case r.Ignored:
		resp.Status = "ignored"
	case r.Replayed:
		resp.Status = "already_confirmed"
	case r.Conflict:
		resp.Status = "conflict"
		resp.Reason = r.Reason
	}
	if r.Reservation != nil {
		id := r.Reservation.ID
		resp.ReservationID = &id
	}
	return resp
}

type ReservationListResponse struct {
	Items  []*queries.ReservationListItem `json:"items"`
	Limit  int                            `json:"limit"`
	Offset int                            `json:"offset"`
}

type SettingsResponse struct {
	Product  string           `json:"product"`
	Settings pricing.Settings `json:"settings"`
}

type BlockedRangeListResponse struct {
	Items []queries.BlockedRangeView `json:"items"`
}
