package handlers

import (
	"errors"
	"log"
	"net/http"

	request "freight_portal/internal/adapter/http/dto/request"
	response "freight_portal/internal/adapter/http/dto/response"
	"freight_portal/internal/adapter/http/middleware"
	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard and the quote and shipment tables.
type AdminHandler struct {
	dashboard usecase.IDashboardUseCase
	quotes    usecase.IAdminQuoteUseCase
	shipments usecase.IAdminShipmentUseCase
}

func NewAdminHandler(dashboard usecase.IDashboardUseCase, quotes usecase.IAdminQuoteUseCase, shipments usecase.IAdminShipmentUseCase) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, quotes: quotes, shipments: shipments}
}

// Dashboard godoc
// @Summary      Admin dashboard counters
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Failure      403  {object}  pkg.HTTPError
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	token := middleware.SessionFrom(c).Token
	d, err := h.dashboard.Load(c.Request.Context(), token)
	if err != nil {
		log.Printf("[admin][handler] dashboard failed err=%v", err)
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// ListQuotes godoc
// @Summary      Filtered, sorted and paginated quotes
// @Tags         admin
// @Produce      json
// @Param        page       query  int     false  "Page (1-based)"
// @Param        search     query  string  false  "Free text"
// @Param        status     query  string  false  "Quote status"
// @Param        transport  query  string  false  "air, sea or road"
// @Param        from       query  string  false  "YYYY-MM-DD"
// @Param        to         query  string  false  "YYYY-MM-DD"
// @Param        sort       query  string  false  "Sort key"
// @Param        order      query  string  false  "asc or desc"
// @Success      200  {object}  response.PageResponse[response.QuoteResponse]
// @Router       /admin/quotes [get]
func (h *AdminHandler) ListQuotes(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.quotes.List(c.Request.Context(), middleware.SessionFrom(c).Token, q)
	if err != nil {
		log.Printf("[admin][handler] list quotes failed err=%v", err)
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromQuote))
}

// QuoteAction applies confirm, reject, dispatch or mark-paid and answers with
// the reloaded table.
func (h *AdminHandler) QuoteAction(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	id, action := c.Param("id"), entities.QuoteAction(c.Param("action"))
	log.Printf("[admin][handler] quote action start id=%s action=%s", id, action)
	page, err := h.quotes.ApplyAction(c.Request.Context(), middleware.SessionFrom(c).Token, id, action, q)
	if err != nil {
		log.Printf("[admin][handler] quote action failed id=%s action=%s err=%v", id, action, err)
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromQuote))
}

func (h *AdminHandler) CreateShipment(c *gin.Context) {
	id := c.Param("id")
	s, err := h.quotes.CreateShipment(c.Request.Context(), middleware.SessionFrom(c).Token, id)
	if err != nil {
		log.Printf("[admin][handler] create shipment failed quote=%s err=%v", id, err)
		writeError(c, mapAdminError(err))
		return
	}
	log.Printf("[admin][handler] shipment created quote=%s shipment=%s", id, s.ID)
	c.JSON(http.StatusCreated, response.FromShipment(s))
}

func (h *AdminHandler) ListShipments(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.shipments.List(c.Request.Context(), middleware.SessionFrom(c).Token, q)
	if err != nil {
		log.Printf("[admin][handler] list shipments failed err=%v", err)
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromShipment))
}

func (h *AdminHandler) UpdateShipmentStatus(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	var payload request.ShipmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	id := c.Param("id")
	status := payload.Status
	page, err := h.shipments.UpdateStatus(c.Request.Context(), middleware.SessionFrom(c).Token, id, status, payload.Comment, q)
	if err != nil {
		log.Printf("[admin][handler] shipment status failed id=%s status=%s err=%v", id, status, err)
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromShipment))
}

func (h *AdminHandler) DeleteShipment(c *gin.Context) {
	id := c.Param("id")
	if err := h.shipments.Delete(c.Request.Context(), middleware.SessionFrom(c).Token, id); err != nil {
		log.Printf("[admin][handler] delete shipment failed id=%s err=%v", id, err)
		writeError(c, mapAdminError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func bindList(c *gin.Context) (usecase.ListQuery, bool) {
	var r request.ListRequest
	if err := c.ShouldBindQuery(&r); err != nil {
		writeError(c, bindingError(err))
		return usecase.ListQuery{}, false
	}
	return r.ToQuery(), true
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Invalid quote id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShipmentID):
		return pkg.NewDomainErrorSimple("INVALID_SHIPMENT_ID", "Invalid shipment id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownQuoteAction):
		return pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown quote action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShipmentStatus):
		return pkg.NewValidationError(map[string]string{"status": "oneof"})
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", "Quote status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrShipmentNotAllowed):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_ALLOWED", "Quote must be confirmed and paid, without an existing shipment", http.StatusConflict)
	}
	if appErr := mapBackendError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
