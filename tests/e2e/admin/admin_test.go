//go:build e2e

package admin_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"glamping-booking/internal/handler/dto/response"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/tests/common/authtest"
	"glamping-booking/tests/common/builder"
	"glamping-booking/tests/common/dbtest"
	"glamping-booking/tests/common/httptest"
	"glamping-booking/tests/e2e"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	settingsURL      = "/api/admin/settings/%s"
	blockedRangesURL = "/api/admin/blocked-ranges"
	reservationsURL  = "/api/admin/reservations"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func (s *AdminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) login(t *testing.T) string {
	t.Helper()
	return authtest.LoginAdmin(t, s.Router, e2e.AdminEmail, e2e.AdminPassword)
}

type settingsBody struct {
	Product  string `json:"product"`
	Settings struct {
		VATRate      float64 `json:"vatRate"`
		CustomAddOns []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"customAddOns"`
	} `json:"settings"`
}

// =============================================================================
// TestAuth - admin login and route protection
// =============================================================================

func (s *AdminSuite) TestAuth() {
	s.Run("Error case: admin routes require a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(settingsURL, "camping"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/login",
			map[string]string{"email": e2e.AdminEmail, "password": "not-the-password"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Normal case: login token opens admin routes", func() {
		t := s.T()
		token := s.login(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(settingsURL, "camping"), nil, token)

		var body settingsBody
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, "camping", body.Product)
		assert.InDelta(t, 0.05, body.Settings.VATRate, 1e-9)
	})
}

// =============================================================================
// TestSettings - custom add-ons flow into pricing
// =============================================================================

func (s *AdminSuite) TestSettings() {
	s.Run("Normal case: a custom add-on is priced into new reservations", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(settingsURL, "barbecue")+"/custom-add-ons",
			map[string]any{"name": "Live music", "price": 250}, token)
		var body settingsBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
		require.Len(t, body.Settings.CustomAddOns, 1)
		addOnID := body.Settings.CustomAddOns[0].ID

		plain := builder.NewBarbecueBuilder()
		qw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/barbecue/quote", plain.BuildDTO(), "")
		var base queries.QuoteView
		httptest.AssertSuccessResponse(t, qw, http.StatusOK, &base)

		withMusic := builder.NewBarbecueBuilder().With(func(b *builder.ReservationBuilder) {
			b.CustomAddOnIDs = []string{addOnID}
		})
		mw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/barbecue/quote", withMusic.BuildDTO(), "")
		var priced queries.QuoteView
		httptest.AssertSuccessResponse(t, mw, http.StatusOK, &priced)

		assert.Equal(t, int64(25000), priced.Quote.CustomAddOnsCost.Cents())
		assert.Greater(t, priced.Quote.Total.Cents(), base.Quote.Total.Cents())
	})

	s.Run("Error case: unknown add-on id is refused", func() {
		t := s.T()
		b := builder.NewBarbecueBuilder().With(func(b *builder.ReservationBuilder) {
			b.CustomAddOnIDs = []string{"does-not-exist"}
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/barbecue/reservations", b.BuildDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "no longer available")
	})
}

// =============================================================================
// TestBlockedRanges - create, list, delete
// =============================================================================

func (s *AdminSuite) TestBlockedRanges() {
	s.Run("Normal case: created range is listed and can be removed", func() {
		t := s.T()
		token := s.login(t)
		start := builder.NewCampingBuilder().Date

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blockedRangesURL, map[string]string{
			"product":   "camping",
			"startDate": start.String(),
			"endDate":   start.AddDays(3).String(),
			"reason":    "Maintenance",
		}, token)
		var created queries.BlockedRangeView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, blockedRangesURL+"?product=camping", nil, token)
		var list response.BlockedRangeListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list.Items, 1)
		assert.Equal(t, created.ID, list.Items[0].ID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, blockedRangesURL+"/"+created.ID.String(), nil, token)
		assert.Equal(t, http.StatusNoContent, dw.Code)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/camping/availability?date="+start.String(), nil, "")
		var view queries.AvailabilityView
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &view)
		assert.True(t, view.OK())
	})

	s.Run("Error case: inverted range is a validation error", func() {
		t := s.T()
		token := s.login(t)
		start := builder.NewCampingBuilder().Date

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blockedRangesURL, map[string]string{
			"product":   "camping",
			"startDate": start.AddDays(3).String(),
			"endDate":   start.String(),
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestReservations - list, export, invoice, delete
// =============================================================================

func (s *AdminSuite) TestReservations() {
	s.Run("Normal case: reservations are listed, exported and invoiced", func() {
		t := s.T()
		token := s.login(t)

		b := builder.NewCampingBuilder()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/camping/reservations", b.BuildDTO(), "")
		var created response.ReservationCreatedResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusCreated, &created)
		id := created.Reservation.ID.String()

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?product=camping&paid=false", nil, token)
		var list response.ReservationListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list.Items, 1)
		assert.Equal(t, created.Reservation.ID, list.Items[0].ID)

		ew := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/export.csv", nil, token)
		require.Equal(t, http.StatusOK, ew.Code)
		assert.Contains(t, ew.Header().Get("Content-Type"), "text/csv")
		var rows []*queries.ReservationCSVRow
		require.NoError(t, gocsv.UnmarshalBytes(ew.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, id, rows[0].ID)
		assert.Equal(t, b.Date.String(), rows[0].Date)

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id+"/invoice.pdf", nil, token)
		require.Equal(t, http.StatusOK, pw.Code)
		assert.Equal(t, "application/pdf", pw.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(pw.Body.Bytes(), []byte("%PDF-")))

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+id, nil, token)
		assert.Equal(t, http.StatusNoContent, dw.Code)
		assert.Equal(t, 0, dbtest.CountReservations(t, s.DB, "camping", b.Date.String()))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations/"+id, nil, "")
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, "")
	})
}
