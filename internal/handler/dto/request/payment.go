package request

import "github.com/google/uuid"

type PaymentWebhookRequest struct {
	Type          string    `json:"type" binding:"required"`
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
}
