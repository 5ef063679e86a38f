package handlers

import (
	"errors"
	"log"
	"net/http"

	response "freight_portal/internal/adapter/http/dto/response"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the public tracking lookup.
type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// Track godoc
// @Summary      Track a shipment by its code
// @Tags         tracking
// @Produce      json
// @Param        code  path      string  true  "Tracking code"
// @Success      200   {object}  response.TrackingResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /track/{code} [get]
func (h *TrackingHandler) Track(c *gin.Context) {
	code := c.Param("code")
	log.Printf("[tracking][handler] track start code=%s", code)
	t, err := h.usecase.Track(c.Request.Context(), code)
	if err != nil {
		log.Printf("[tracking][handler] track failed code=%s err=%v", code, err)
		writeError(c, mapTrackingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTracking(t))
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackingCode):
		return pkg.NewDomainErrorSimple("INVALID_TRACKING_CODE", "Veuillez saisir un code de suivi.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Aucune expédition trouvée pour ce code de suivi.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTrackingUnavailable):
		return pkg.NewDomainError("TRACKING_UNAVAILABLE", "Le suivi est momentanément indisponible, veuillez réessayer.", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
