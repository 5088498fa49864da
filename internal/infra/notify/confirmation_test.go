//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/infra/notify"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	err error
}

func (s stubRenderer) Render(_ *queries.ReservationView) ([]byte, error) {
	return []byte("%PDF-stub"), s.err
}

type recordingMailer struct {
	sent []notify.Email
	err  error
}

func (m *recordingMailer) Send(email notify.Email) error {
	m.sent = append(m.sent, email)
	return m.err
}

func confirmedBody(t *testing.T, mutate func(*commands.ReservationConfirmedEvent)) []byte {
	t.Helper()
	event := commands.ReservationConfirmedEvent{
		Type:       commands.EventReservationConfirmed,
		OccurredAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		Reservation: queries.ReservationView{
			ID:          uuid.MustParse("0b9d1c52-8a0f-4bb4-9f3d-6a2b1f0c7e11"),
			Product:     "barbecue",
			Name:        "Omar",
			Email:       "omar@example.com",
			Date:        "2026-03-14",
			GroupSize:   15,
			ArrivalSlot: "5:00 PM",
			Subtotal:    pricing.NewMoney(150000),
			VAT:         pricing.NewMoney(7500),
			Total:       pricing.NewMoney(157500),
			Breakdown:   []pricing.Line{{Code: pricing.LineBase, Label: "Group of 15", Amount: pricing.NewMoney(150000)}},
			IsPaid:      true,
		},
	}
	if mutate != nil {
		mutate(&event)
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestConfirmationHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("success: email carries the invoice", func(t *testing.T) {
		mailer := &recordingMailer{}
		h := notify.NewConfirmationHandler(stubRenderer{}, mailer, "Glamping & BBQ")

		err := h.Handle(ctx, confirmedBody(t, nil))

		require.NoError(t, err)
		require.Len(t, mailer.sent, 1)
		got := mailer.sent[0]
		assert.Equal(t, "omar@example.com", got.To)
		assert.Equal(t, "Glamping & BBQ booking confirmed for 2026-03-14", got.Subject)
		assert.Contains(t, got.Text, "Group size: 15")
		assert.Contains(t, got.Text, "1575.00")
		require.Len(t, got.Attachments, 1)
		assert.Equal(t, "invoice-0b9d1c52.pdf", got.Attachments[0].Filename)
		assert.Equal(t, []byte("%PDF-stub"), got.Attachments[0].Data)
	})

	t.Run("success: other event types are skipped", func(t *testing.T) {
		mailer := &recordingMailer{}
		h := notify.NewConfirmationHandler(stubRenderer{}, mailer, "x")

		err := h.Handle(ctx, confirmedBody(t, func(e *commands.ReservationConfirmedEvent) { e.Type = "reservation.deleted" }))

		require.NoError(t, err)
		assert.Empty(t, mailer.sent)
	})

	testCases := []struct {
		name      string
		body      []byte
		renderer  stubRenderer
		mailErr   error
		permanent bool
	}{
		{name: "error: malformed body", body: []byte("{"), permanent: true},
		{name: "error: missing email", body: confirmedBody(t, func(e *commands.ReservationConfirmedEvent) { e.Reservation.Email = "" }), permanent: true},
		{name: "error: render failure", body: confirmedBody(t, nil), renderer: stubRenderer{err: errors.New("font missing")}},
		{name: "error: smtp failure", body: confirmedBody(t, nil), mailErr: errors.New("connection refused")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &recordingMailer{err: tc.mailErr}
			h := notify.NewConfirmationHandler(tc.renderer, mailer, "x")

			err := h.Handle(ctx, tc.body)

			require.Error(t, err)
			assert.Equal(t, tc.permanent, errors.Is(err, notify.ErrPermanent))
		})
	}
}
