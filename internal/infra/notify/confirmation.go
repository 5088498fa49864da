package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"
)

// ConfirmationHandler turns a reservation.confirmed event into a customer
// email with the PDF invoice attached.
type ConfirmationHandler struct {
	invoices queries.InvoiceRenderer
	mailer   Mailer
	business string
}

func NewConfirmationHandler(invoices queries.InvoiceRenderer, mailer Mailer, business string) *ConfirmationHandler {
	return &ConfirmationHandler{invoices: invoices, mailer: mailer, business: business}
}

func (h *ConfirmationHandler) Handle(_ context.Context, body []byte) error {
	var event commands.ReservationConfirmedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal: %w: %w", err, ErrPermanent)
	}
	if event.Type != commands.EventReservationConfirmed {
		slog.Info("skipping event", "type", event.Type)
		return nil
	}
	view := &event.Reservation
	if view.Email == "" {
		return fmt.Errorf("reservation %s has no customer email: %w", view.ID, ErrPermanent)
	}

	pdf, err := h.invoices.Render(view)
	if err != nil {
		return fmt.Errorf("render invoice: %w", err)
	}

	email := Email{
		To:      view.Email,
		Subject: fmt.Sprintf("%s booking confirmed for %s", h.business, view.Date),
		Text:    confirmationText(h.business, view),
		Attachments: []Attachment{{
			Filename:    InvoiceFilename(view),
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}
	if err := h.mailer.Send(email); err != nil {
		return err
	}
	slog.Info("confirmation email sent", "reservation_id", view.ID.String(), "to", view.Email)
	return nil
}

func InvoiceFilename(view *queries.ReservationView) string {
	return fmt.Sprintf("invoice-%s.pdf", view.ID.String()[:8])
}

func confirmationText(business string, v *queries.ReservationView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", v.Name)
	fmt.Fprintf(&b, "Your %s booking on %s is confirmed.\n", v.Product, v.Date)
	if v.Location != "" {
		fmt.Fprintf(&b, "Location: %s, tents: %d\n", v.Location, v.Units)
	}
	if v.GroupSize > 0 {
		fmt.Fprintf(&b, "Group size: %d\n", v.GroupSize)
	}
	fmt.Fprintf(&b, "Arrival: %s\n\n", v.ArrivalSlot)
	for _, l := range v.Breakdown {
		fmt.Fprintf(&b, "  %-40s %10s\n", l.Label, l.Amount.String())
	}
	fmt.Fprintf(&b, "\n  %-40s %10s\n", "Subtotal", v.Subtotal.String())
	fmt.Fprintf(&b, "  %-40s %10s\n", "VAT", v.VAT.String())
	fmt.Fprintf(&b, "  %-40s %10s\n\n", "Total", v.Total.String())
	fmt.Fprintf(&b, "Reference: %s\n\n%s\n", v.ID.String(), business)
	return b.String()
}
