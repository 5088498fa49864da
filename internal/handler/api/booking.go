package api

import (
	"errors"
	"net/http"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	reqdto "glamping-booking/internal/handler/dto/request"
	resdto "glamping-booking/internal/handler/dto/response"
	"glamping-booking/internal/handler/httperr"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid id")
)

type BookingHandler struct {
	availability queries.AvailabilityQueries
	reservations queries.ReservationQueries
	commands     commands.ReservationCommands
}

func NewBookingHandler(availability queries.AvailabilityQueries, reservations queries.ReservationQueries, cmds commands.ReservationCommands) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		reservations: reservations,
		commands:     cmds,
	}
}

// @Summary Day availability
// @Description Remaining capacity and free arrival slots for one date
// @Tags booking
// @Produce json
// @Param product path string true "camping or barbecue"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Router /{product}/availability [get]
func (h *BookingHandler) Availability(product pricing.Product) gin.HandlerFunc {
	return func(c *gin.Context) {
		date, err := calendar.ParseDate(c.Query("date"))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter date must be YYYY-MM-DD", nil)
			return
		}

		view, err := h.availability.Availability(c.Request.Context(), product, date)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Price quote
// @Description Prices a request and checks availability without booking
// @Tags booking
// @Accept json
// @Produce json
// @Param product path string true "camping or barbecue"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} httperr.Response
// @Router /{product}/quote [post]
func (h *BookingHandler) Quote(product pricing.Product) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindReservation(c)
		if !ok {
			return
		}

		view, err := h.availability.Quote(c.Request.Context(), product, req)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Create reservation
// @Description Books a pending reservation; payment confirms it
// @Tags booking
// @Accept json
// @Produce json
// @Param product path string true "camping or barbecue"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /{product}/reservations [post]
func (h *BookingHandler) Create(product pricing.Product) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindReservation(c)
		if !ok {
			return
		}

		view, err := h.commands.Create(c.Request.Context(), product, req)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, resdto.ReservationCreatedResponse{
			Reservation: view,
			AmountDue:   view.Total,
		})
	}
}

// @Summary Get reservation
// @Tags booking
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *BookingHandler) GetReservation(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func bindReservation(c *gin.Context) (reservation.Request, bool) {
	var body reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidBody, "Invalid request format", nil)
		return reservation.Request{}, false
	}
	req, err := body.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return reservation.Request{}, false
	}
	return req, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
