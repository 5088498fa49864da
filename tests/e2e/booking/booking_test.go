//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/handler/api"
	"glamping-booking/internal/handler/dto/response"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/tests/common/builder"
	"glamping-booking/tests/common/dbtest"
	"glamping-booking/tests/common/httptest"
	"glamping-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	campingURL     = "/api/camping"
	barbecueURL    = "/api/barbecue"
	reservationURL = "/api/reservations/%s"
	webhookURL     = "/api/payments/webhook"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) create(t *testing.T, productURL string, b *builder.ReservationBuilder) response.ReservationCreatedResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, productURL+"/reservations", b.BuildDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ReservationCreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *BookingSuite) pay(t *testing.T, id uuid.UUID) response.PaymentWebhookResponse {
	t.Helper()
	body, err := json.Marshal(map[string]string{"type": commands.PaymentSucceeded, "reservationId": id.String()})
	require.NoError(t, err)

	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
		api.SignatureHeader: api.Sign([]byte(s.Config.Payment.WebhookSecret), body),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got response.PaymentWebhookResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
	return got
}

// =============================================================================
// TestCampingFlow - quote, book, pay, read back
// =============================================================================

func (s *BookingSuite) TestCampingFlow() {
	s.Run("Normal case: quote matches the created reservation and payment confirms it", func() {
		t := s.T()
		b := builder.NewCampingBuilder().With(func(b *builder.ReservationBuilder) {
			b.AddOns = []string{pricing.AddOnCharcoal}
		})

		qw := httptest.PerformRequest(t, s.Router, http.MethodPost, campingURL+"/quote", b.BuildDTO(), "")
		require.Equal(t, http.StatusOK, qw.Code, qw.Body.String())
		var quote queries.QuoteView
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &quote))
		require.True(t, quote.Availability.OK())

		created := s.create(t, campingURL, b)
		assert.Equal(t, "pending", created.Reservation.Status)
		assert.Nil(t, created.Reservation.HoldExpiresAt)
		assert.Equal(t, quote.Quote.Total, created.AmountDue)
		assert.Equal(t, quote.Quote.Total, created.Reservation.Total)

		paid := s.pay(t, created.Reservation.ID)
		assert.Equal(t, "confirmed", paid.Status)

		again := s.pay(t, created.Reservation.ID)
		assert.Equal(t, "already_confirmed", again.Status)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.Reservation.ID), nil, "")
		require.Equal(t, http.StatusOK, gw.Code)
		var got queries.ReservationView
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &got))

		want := *created.Reservation
		want.Status = "confirmed"
		want.IsPaid = true
		want.HoldExpiresAt = nil
		opts := []cmp.Option{
			cmp.AllowUnexported(pricing.Money{}),
			cmpopts.IgnoreFields(queries.ReservationView{}, "PaidAt", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
		assert.NotNil(t, got.PaidAt)
	})

	s.Run("Error case: second booking at another location on a locked date is rejected", func() {
		t := s.T()
		first := builder.NewCampingBuilder()
		created := s.create(t, campingURL, first)
		require.Equal(t, "confirmed", s.pay(t, created.Reservation.ID).Status)

		second := builder.NewCampingBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = first.Date
			b.Location = pricing.LocationMountain
			b.ArrivalSlot = availability.CampingSlots[1]
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, campingURL+"/reservations", second.BuildDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already booked at")
	})

	s.Run("Normal case: an unpaid booking does not lock the date", func() {
		t := s.T()
		first := builder.NewCampingBuilder()
		s.create(t, campingURL, first)

		second := builder.NewCampingBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = first.Date
			b.Location = pricing.LocationMountain
		})
		created := s.create(t, campingURL, second)
		assert.Equal(t, "confirmed", s.pay(t, created.Reservation.ID).Status)
	})

	s.Run("Error case: blocked date is reported by availability and refused on create", func() {
		t := s.T()
		b := builder.NewCampingBuilder()
		dbtest.InsertBlockedRange(t, s.DB, "camping", b.Date.String(), b.Date.AddDays(2).String(), "Private event")

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, campingURL+"/availability?date="+b.Date.String(), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)
		var view queries.AvailabilityView
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &view))
		assert.Equal(t, availability.StatusBlocked, view.Status)
		assert.Equal(t, "Private event", view.Reason)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, campingURL+"/reservations", b.BuildDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Private event")
	})

	s.Run("Error case: date inside the lead time is rejected", func() {
		t := s.T()
		loc, err := s.Config.Booking.Location()
		require.NoError(t, err)
		b := builder.NewCampingBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = calendar.DateOf(time.Now(), loc)
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, campingURL+"/reservations", b.BuildDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Date is too soon")
	})
}

// =============================================================================
// TestWebhook - signature and event handling
// =============================================================================

func (s *BookingSuite) TestWebhook() {
	s.Run("Error case: bad signature is rejected without touching the reservation", func() {
		t := s.T()
		created := s.create(t, barbecueURL, builder.NewBarbecueBuilder())
		body, err := json.Marshal(map[string]string{"type": commands.PaymentSucceeded, "reservationId": created.Reservation.ID.String()})
		require.NoError(t, err)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
			api.SignatureHeader: api.Sign([]byte("wrong-secret"), body),
		})
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid signature")

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.Reservation.ID), nil, "")
		var got queries.ReservationView
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &got))
		assert.False(t, got.IsPaid)
	})

	s.Run("Error case: payment after the hold lapsed and the date was sold is a conflict", func() {
		t := s.T()
		first := builder.NewBarbecueBuilder()
		late := s.create(t, barbecueURL, first)
		dbtest.ExpireHold(t, s.DB, late.Reservation.ID)

		winner := s.create(t, barbecueURL, builder.NewBarbecueBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = first.Date
			b.Email = "winner@example.com"
		}))
		require.Equal(t, "confirmed", s.pay(t, winner.Reservation.ID).Status)

		got := s.pay(t, late.Reservation.ID)
		assert.Equal(t, "conflict", got.Status)
		assert.Equal(t, "This date is already booked", got.Reason)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, late.Reservation.ID), nil, "")
		var view queries.ReservationView
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &view))
		assert.False(t, view.IsPaid)
	})

	s.Run("Error case: unknown reservation is 404", func() {
		t := s.T()
		body, err := json.Marshal(map[string]string{"type": commands.PaymentSucceeded, "reservationId": uuid.NewString()})
		require.NoError(t, err)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
			api.SignatureHeader: api.Sign([]byte(s.Config.Payment.WebhookSecret), body),
		})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestConcurrentBarbecue - one booking per day under contention
// =============================================================================

func (s *BookingSuite) TestConcurrentBarbecue() {
	s.Run("Normal case: exactly one of many simultaneous requests wins the day", func() {
		t := s.T()
		const workers = 8
		b := builder.NewBarbecueBuilder()
		date := b.Date

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := builder.NewBarbecueBuilder().With(func(b *builder.ReservationBuilder) {
					b.Date = date
					b.Email = fmt.Sprintf("guest%d@example.com", i)
				})
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, barbecueURL+"/reservations", req.BuildDTO(), "")
				mu.Lock()
				codes[w.Code]++
				mu.Unlock()
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, codes[http.StatusCreated], "codes: %v", codes)
		assert.Equal(t, workers-1, codes[http.StatusBadRequest], "codes: %v", codes)
		assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, "barbecue", date.String()))
	})
}
