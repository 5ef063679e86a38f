package handlers

import (
	"log"
	"net/http"

	"freight_portal/internal/adapter/http/middleware"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
)

type MetadataHandler struct {
	usecase usecase.IMetadataUseCase
}

func NewMetadataHandler(uc usecase.IMetadataUseCase) *MetadataHandler {
	return &MetadataHandler{usecase: uc}
}

// Get godoc
// @Summary      Route metadata for the quote wizard
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  entities.QuoteMetadata
// @Failure      502  {object}  pkg.HTTPError
// @Router       /quotes/meta [get]
func (h *MetadataHandler) Get(c *gin.Context) {
	s := middleware.SessionFrom(c)
	meta, err := h.usecase.Get(c.Request.Context(), s.Token)
	if err != nil {
		log.Printf("[metadata][handler] get failed err=%v", err)
		writeError(c, mapMetadataError(err))
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *MetadataHandler) Invalidate(c *gin.Context) {
	h.usecase.Invalidate()
	log.Printf("[metadata][handler] cache invalidated")
	c.Status(http.StatusNoContent)
}

func mapMetadataError(err error) *pkg.AppError {
	if appErr := mapBackendError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
