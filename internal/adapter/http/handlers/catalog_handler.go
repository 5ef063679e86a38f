package handlers

import (
	"errors"
	"log"
	"net/http"

	request "freight_portal/internal/adapter/http/dto/request"
	response "freight_portal/internal/adapter/http/dto/response"
	"freight_portal/internal/adapter/http/middleware"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the admin pricing and package type tables.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListPricing(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.usecase.ListPricing(c.Request.Context(), middleware.SessionFrom(c).Token, q)
	if err != nil {
		log.Printf("[catalog][handler] list pricing failed err=%v", err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromPricing))
}

// SavePricing godoc
// @Summary      Create or update a pricing grid
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PricingRequest  true  "Pricing"
// @Success      200      {object}  response.PricingResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /admin/pricing [post]
func (h *CatalogHandler) SavePricing(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	saved, err := h.usecase.SavePricing(c.Request.Context(), middleware.SessionFrom(c).Token, payload.ToEntity())
	if err != nil {
		log.Printf("[catalog][handler] save pricing failed id=%s err=%v", payload.ID, err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricing(saved))
}

func (h *CatalogHandler) DeletePricing(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeletePricing(c.Request.Context(), middleware.SessionFrom(c).Token, id); err != nil {
		log.Printf("[catalog][handler] delete pricing failed id=%s err=%v", id, err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListPackageTypes(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.usecase.ListPackageTypes(c.Request.Context(), middleware.SessionFrom(c).Token, q)
	if err != nil {
		log.Printf("[catalog][handler] list package types failed err=%v", err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromPackageType))
}

func (h *CatalogHandler) SavePackageType(c *gin.Context) {
	var payload request.PackageTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	saved, err := h.usecase.SavePackageType(c.Request.Context(), middleware.SessionFrom(c).Token, payload.ToEntity())
	if err != nil {
		log.Printf("[catalog][handler] save package type failed id=%s err=%v", payload.ID, err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPackageType(saved))
}

func (h *CatalogHandler) DeletePackageType(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeletePackageType(c.Request.Context(), middleware.SessionFrom(c).Token, id); err != nil {
		log.Printf("[catalog][handler] delete package type failed id=%s err=%v", id, err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPricingID):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_ID", "Invalid pricing id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPackageTypeID):
		return pkg.NewDomainErrorSimple("INVALID_PACKAGE_TYPE_ID", "Invalid package type id", http.StatusBadRequest)
	}
	if appErr := mapBackendError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
