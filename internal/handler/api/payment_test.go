//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"glamping-booking/internal/handler/api"
	resdto "glamping-booking/internal/handler/dto/response"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/tests/common/builder"
	"glamping-booking/tests/common/httptest"
	commandsmock "glamping-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec-test"

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockPayments *commandsmock.MockPaymentCommands
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)

	h := api.NewPaymentHandler(s.mockPayments, webhookSecret)
	s.router.POST("/payments/webhook", h.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) post(body []byte, signature string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(api.SignatureHeader, signature)
	}
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PaymentHandlerTestSuite) event(eventType string, id uuid.UUID) []byte {
	body, err := json.Marshal(map[string]any{"type": eventType, "reservationId": id})
	s.Require().NoError(err)
	return body
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	view := queries.NewReservationView(builder.NewCampingBuilder().BuildReservation(fixedTime))

	s.Run("success: confirms a signed payment", func() {
		body := s.event(commands.PaymentSucceeded, view.ID)
		s.mockPayments.EXPECT().Confirm(gomock.Any(), commands.PaymentEvent{Type: commands.PaymentSucceeded, ReservationID: view.ID}).
			Return(&commands.ConfirmResult{Reservation: view}, nil).Times(1)

		rec := s.post(body, api.Sign([]byte(webhookSecret), body))

		var response resdto.PaymentWebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
		s.Equal(view.ID, *response.ReservationID)
	})

	s.Run("success: replay is acknowledged", func() {
		body := s.event(commands.PaymentSucceeded, view.ID)
		s.mockPayments.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(&commands.ConfirmResult{Reservation: view, Replayed: true}, nil).Times(1)

		rec := s.post(body, api.Sign([]byte(webhookSecret), body))

		var response resdto.PaymentWebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("already_confirmed", response.Status)
	})

	s.Run("success: payment for a date taken meanwhile reports conflict", func() {
		body := s.event(commands.PaymentSucceeded, view.ID)
		s.mockPayments.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(&commands.ConfirmResult{Reservation: view, Conflict: true, Reason: "This date is already booked"}, nil).Times(1)

		rec := s.post(body, api.Sign([]byte(webhookSecret), body))

		var response resdto.PaymentWebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("conflict", response.Status)
		s.Equal("This date is already booked", response.Reason)
		s.Equal(view.ID, *response.ReservationID)
	})

	s.Run("success: other event types are ignored", func() {
		body := s.event("payment.failed", view.ID)
		s.mockPayments.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(&commands.ConfirmResult{Ignored: true}, nil).Times(1)

		rec := s.post(body, api.Sign([]byte(webhookSecret), body))

		var response resdto.PaymentWebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ignored", response.Status)
		s.Nil(response.ReservationID)
	})

	s.Run("error: 401 on bad signature", func() {
		body := s.event(commands.PaymentSucceeded, view.ID)
		cases := map[string]string{
			"missing":     "",
			"wrong key":   api.Sign([]byte("other"), body),
			"not hex mac": "deadbeef",
		}
		for name, sig := range cases {
			s.Run(name, func() {
				rec := s.post(body, sig)

				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid signature")
			})
		}
	})

	s.Run("error: 400 on malformed event", func() {
		bodies := map[string][]byte{
			"not json":          []byte("{"),
			"missing id":        []byte(`{"type":"payment.succeeded"}`),
			"missing type":      []byte(`{"reservationId":"` + view.ID.String() + `"}`),
			"id is not an uuid": []byte(`{"type":"payment.succeeded","reservationId":"42"}`),
		}
		for name, body := range bodies {
			s.Run(name, func() {
				rec := s.post(body, api.Sign([]byte(webhookSecret), body))

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 for an unknown reservation", func() {
		body := s.event(commands.PaymentSucceeded, uuid.New())
		s.mockPayments.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := s.post(body, api.Sign([]byte(webhookSecret), body))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 500 when confirmation fails", func() {
		body := s.event(commands.PaymentSucceeded, view.ID)
		s.mockPayments.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(nil, errors.New("tx aborted")).Times(1)

		rec := s.post(body, api.Sign([]byte(webhookSecret), body))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
