package api

import (
	"fmt"
	"net/http"

	"glamping-booking/internal/domain/pricing"
	reqdto "glamping-booking/internal/handler/dto/request"
	resdto "glamping-booking/internal/handler/dto/response"
	"glamping-booking/internal/handler/httperr"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	settingsCommands    commands.SettingsCommands
	settingsQueries     queries.SettingsQueries
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewAdminHandler(
	settingsCommands commands.SettingsCommands,
	settingsQueries queries.SettingsQueries,
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *AdminHandler {
	return &AdminHandler{
		settingsCommands:    settingsCommands,
		settingsQueries:     settingsQueries,
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// -----------------------------------------------------------------------------
// Settings
// -----------------------------------------------------------------------------

// @Summary Get pricing settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param product path string true "camping or barbecue"
// @Success 200 {object} resdto.SettingsResponse
// @Router /admin/settings/{product} [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	product, ok := pathProduct(c)
	if !ok {
		return
	}
	settings, err := h.settingsQueries.Get(c.Request.Context(), product)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SettingsResponse{Product: product.String(), Settings: settings})
}

// @Summary Replace pricing settings
// @Description Missing or invalid fields fall back to defaults
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product path string true "camping or barbecue"
// @Success 200 {object} resdto.SettingsResponse
// @Router /admin/settings/{product} [put]
func (h *AdminHandler) ReplaceSettings(c *gin.Context) {
	product, ok := pathProduct(c)
	if !ok {
		return
	}
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	settings, err := h.settingsCommands.Replace(c.Request.Context(), product, doc)
	h.respondSettings(c, product, http.StatusOK, settings, err)
}

// @Summary Add custom add-on
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product path string true "camping or barbecue"
// @Param request body reqdto.CustomAddOnRequest true "Add-on"
// @Success 201 {object} resdto.SettingsResponse
// @Router /admin/settings/{product}/custom-add-ons [post]
func (h *AdminHandler) AddCustomAddOn(c *gin.Context) {
	product, ok := pathProduct(c)
	if !ok {
		return
	}
	var req reqdto.CustomAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	settings, err := h.settingsCommands.AddCustomAddOn(c.Request.Context(), product, req.ToDomain())
	h.respondSettings(c, product, http.StatusCreated, settings, err)
}

// @Summary Remove custom add-on
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param product path string true "camping or barbecue"
// @Param id path string true "Add-on ID"
// @Success 200 {object} resdto.SettingsResponse
// @Router /admin/settings/{product}/custom-add-ons/{id} [delete]
func (h *AdminHandler) RemoveCustomAddOn(c *gin.Context) {
	product, ok := pathProduct(c)
	if !ok {
		return
	}
	settings, err := h.settingsCommands.RemoveCustomAddOn(c.Request.Context(), product, c.Param("id"))
	h.respondSettings(c, product, http.StatusOK, settings, err)
}

// @Summary Add special period
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product path string true "camping or barbecue"
// @Param request body reqdto.SpecialPeriodRequest true "Special period"
// @Success 201 {object} resdto.SettingsResponse
// @Router /admin/settings/{product}/special-periods [post]
func (h *AdminHandler) AddSpecialPeriod(c *gin.Context) {
	product, period, ok := bindSpecialPeriod(c, "")
	if !ok {
		return
	}
	settings, err := h.settingsCommands.AddSpecialPeriod(c.Request.Context(), product, period)
	h.respondSettings(c, product, http.StatusCreated, settings, err)
}

// @Summary Update special period
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product path string true "camping or barbecue"
// @Param id path string true "Special period ID"
// @Param request body reqdto.SpecialPeriodRequest true "Special period"
// @Success 200 {object} resdto.SettingsResponse
// @Router /admin/settings/{product}/special-periods/{id} [put]
func (h *AdminHandler) UpdateSpecialPeriod(c *gin.Context) {
	product, period, ok := bindSpecialPeriod(c, c.Param("id"))
	if !ok {
		return
	}
	settings, err := h.settingsCommands.UpdateSpecialPeriod(c.Request.Context(), product, period)
	h.respondSettings(c, product, http.StatusOK, settings, err)
}

// @Summary Remove special period
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param product path string true "camping or barbecue"
// @Param id path string true "Special period ID"
// @Success 200 {object} resdto.SettingsResponse
// @Router /admin/settings/{product}/special-periods/{id} [delete]
func (h *AdminHandler) RemoveSpecialPeriod(c *gin.Context) {
	product, ok := pathProduct(c)
	if !ok {
		return
	}
	settings, err := h.settingsCommands.RemoveSpecialPeriod(c.Request.Context(), product, c.Param("id"))
	h.respondSettings(c, product, http.StatusOK, settings, err)
}

func (h *AdminHandler) respondSettings(c *gin.Context, product pricing.Product, status int, settings pricing.Settings, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.SettingsResponse{Product: product.String(), Settings: settings})
}

func bindSpecialPeriod(c *gin.Context, id string) (pricing.Product, pricing.SpecialPeriod, bool) {
	product, ok := pathProduct(c)
	if !ok {
		return "", pricing.SpecialPeriod{}, false
	}
	var req reqdto.SpecialPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return "", pricing.SpecialPeriod{}, false
	}
	period, err := req.ToDomain(id)
	if err != nil {
		httperr.Abort(c, err)
		return "", pricing.SpecialPeriod{}, false
	}
	return product, period, true
}

// -----------------------------------------------------------------------------
// Blocked ranges
// -----------------------------------------------------------------------------

// @Summary List blocked date ranges
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param product query string false "camping or barbecue"
// @Success 200 {object} resdto.BlockedRangeListResponse
// @Router /admin/blocked-ranges [get]
func (h *AdminHandler) ListBlockedRanges(c *gin.Context) {
	var product *pricing.Product
	if raw := c.Query("product"); raw != "" {
		p, err := pricing.ParseProduct(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown product", nil)
			return
		}
		product = &p
	}

	items, err := h.settingsQueries.BlockedRanges(c.Request.Context(), product)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BlockedRangeListResponse{Items: items})
}

// @Summary Block a date range
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlockedRangeRequest true "Blocked range"
// @Success 201 {object} queries.BlockedRangeView
// @Router /admin/blocked-ranges [post]
func (h *AdminHandler) CreateBlockedRange(c *gin.Context) {
	var req reqdto.BlockedRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.settingsCommands.CreateBlockedRange(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Remove a blocked date range
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Blocked range ID"
// @Success 204
// @Router /admin/blocked-ranges/{id} [delete]
func (h *AdminHandler) DeleteBlockedRange(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.settingsCommands.DeleteBlockedRange(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// -----------------------------------------------------------------------------
// Reservations
// -----------------------------------------------------------------------------

// @Summary List reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param product query string false "camping or barbecue"
// @Param from query string false "first date, YYYY-MM-DD"
// @Param to query string false "last date, YYYY-MM-DD"
// @Param paid query bool false "payment state"
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Success 200 {object} resdto.ReservationListResponse
// @Router /admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}
	items, err := h.reservationQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservationListResponse{Items: items, Limit: filter.Limit, Offset: filter.Offset})
}

// @Summary Export reservations as CSV
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/reservations/export.csv [get]
func (h *AdminHandler) ExportReservations(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}
	out, err := h.reservationQueries.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

// @Summary Reservation invoice
// @Tags admin
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {file} file
// @Router /admin/reservations/{id}/invoice.pdf [get]
func (h *AdminHandler) Invoice(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	pdf, err := h.reservationQueries.Invoice(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="invoice-%s.pdf"`, id.String()[:8]))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary Delete reservation
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) DeleteReservation(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.reservationCommands.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindListQuery(c *gin.Context) (shared.ReservationFilter, bool) {
	var q reqdto.ReservationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return shared.ReservationFilter{}, false
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return shared.ReservationFilter{}, false
	}
	return filter, true
}

func pathProduct(c *gin.Context) (pricing.Product, bool) {
	p, err := pricing.ParseProduct(c.Param("product"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown product", nil)
		return "", false
	}
	return p, true
}
