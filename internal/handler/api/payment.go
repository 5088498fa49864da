package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	reqdto "glamping-booking/internal/handler/dto/request"
	resdto "glamping-booking/internal/handler/dto/response"
	"glamping-booking/internal/handler/httperr"
	"glamping-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const SignatureHeader = "X-Payment-Signature"

var errBadSignature = errors.New("payment signature mismatch")

type PaymentHandler struct {
	payments commands.PaymentCommands
	secret   []byte
}

func NewPaymentHandler(payments commands.PaymentCommands, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{payments: payments, secret: []byte(webhookSecret)}
}

// Sign is the hex HMAC-SHA256 of body the provider puts in X-Payment-Signature.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// @Summary Payment webhook
// @Description Confirms a reservation once when the provider reports payment.succeeded. Reports conflict when the date was confirmed for another guest meanwhile
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Signature header string true "hex HMAC-SHA256 of the raw body"
// @Param request body reqdto.PaymentWebhookRequest true "Payment event"
// @Success 200 {object} resdto.PaymentWebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	got := strings.ToLower(strings.TrimSpace(c.GetHeader(SignatureHeader)))
	if !hmac.Equal([]byte(got), []byte(Sign(h.secret, body))) {
		slog.Warn("rejected payment webhook with bad signature", "client_ip", c.ClientIP())
		httperr.AbortWithError(c, http.StatusUnauthorized, errBadSignature, "Invalid signature", nil)
		return
	}

	var req reqdto.PaymentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.payments.Confirm(c.Request.Context(), commands.PaymentEvent{
		Type:          req.Type,
		ReservationID: req.ReservationID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}
