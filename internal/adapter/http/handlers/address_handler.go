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

// AddressHandler serves the caller's address book.
type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// List godoc
// @Summary      Address book grouped by type
// @Tags         addresses
// @Produce      json
// @Success      200  {object}  response.AddressBookResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	s := middleware.SessionFrom(c)
	book, err := h.usecase.List(c.Request.Context(), s.Token)
	if err != nil {
		log.Printf("[address][handler] list failed err=%v", err)
		writeError(c, mapAddressError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAddressBook(book))
}

func (h *AddressHandler) Create(c *gin.Context) {
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	s := middleware.SessionFrom(c)
	created, err := h.usecase.Create(c.Request.Context(), s.Token, payload.ToInput())
	if err != nil {
		log.Printf("[address][handler] create failed err=%v", err)
		writeError(c, mapAddressError(err))
		return
	}
	log.Printf("[address][handler] create success id=%s type=%s", created.ID, created.Type)
	c.JSON(http.StatusCreated, response.FromAddress(created))
}

func (h *AddressHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	s := middleware.SessionFrom(c)
	updated, err := h.usecase.Update(c.Request.Context(), s.Token, id, payload.ToInput())
	if err != nil {
		log.Printf("[address][handler] update failed id=%s err=%v", id, err)
		writeError(c, mapAddressError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAddress(updated))
}

func (h *AddressHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	s := middleware.SessionFrom(c)
	if err := h.usecase.Delete(c.Request.Context(), s.Token, id); err != nil {
		log.Printf("[address][handler] delete failed id=%s err=%v", id, err)
		writeError(c, mapAddressError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAddressError(err error) *pkg.AppError {
	if appErr := mapBackendError(err); appErr != nil {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidAddressID) {
		return pkg.NewDomainErrorSimple("INVALID_ADDRESS_ID", "Invalid address id", http.StatusBadRequest)
	}
	return internalError(err)
}
