package invoice

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"glamping-booking/internal/pkg/config"
	"glamping-booking/internal/usecase/queries"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Renderer draws a one-page A4 invoice with a signed QR code that door
// staff can scan to check the booking.
type Renderer struct {
	business string
	key      []byte
}

func NewRenderer(cfg config.InvoiceConfig) *Renderer {
	return &Renderer{business: cfg.BusinessName, key: []byte(cfg.SigningKey)}
}

// Payload is id|date|totalCents|signature.
func (r *Renderer) Payload(view *queries.ReservationView) string {
	data := fmt.Sprintf("%s|%s|%d", view.ID.String(), view.Date, view.Total.Cents())
	return data + "|" + r.sign(data)
}

// Verify reports whether a scanned payload was issued with this key.
func (r *Renderer) Verify(payload string) bool {
	i := strings.LastIndexByte(payload, '|')
	if i < 0 {
		return false
	}
	want := r.sign(payload[:i])
	return hmac.Equal([]byte(want), []byte(payload[i+1:]))
}

func (r *Renderer) sign(data string) string {
	h := hmac.New(sha256.New, r.key)
	h.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

func (r *Renderer) Render(view *queries.ReservationView) ([]byte, error) {
	qrPNG, err := qrcode.Encode(r.Payload(view), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", view.ID.String()), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, r.business)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	status := "PENDING PAYMENT"
	if view.IsPaid {
		status = "PAID"
	}
	header := [][2]string{
		{"Invoice", view.ID.String()},
		{"Status", status},
		{"Customer", view.Name},
		{"Email", view.Email},
		{"Phone", view.Phone},
		{"Product", view.Product},
		{"Date", view.Date},
		{"Arrival", view.ArrivalSlot},
	}
	if view.Location != "" {
		header = append(header, [2]string{"Location", fmt.Sprintf("%s (%d tent(s))", view.Location, view.Units)})
	}
	if view.GroupSize > 0 {
		header = append(header, [2]string{"Group size", fmt.Sprintf("%d", view.GroupSize)})
	}
	for _, kv := range header {
		pdf.CellFormat(35, 7, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, kv[1], "", 1, "L", false, 0, "")
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 20, 40, 40, false, opts, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(140, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, l := range view.Breakdown {
		pdf.CellFormat(140, 7, l.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, l.Amount.String(), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	for _, row := range [][2]string{
		{"Subtotal", view.Subtotal.String()},
		{"VAT", view.VAT.String()},
		{"Total", view.Total.String()},
	} {
		pdf.CellFormat(140, 8, row[0], "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, row[1], "1", 1, "R", false, 0, "")
	}
	if view.SpecialPricingName != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Special pricing applied: %s", view.SpecialPricingName))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
