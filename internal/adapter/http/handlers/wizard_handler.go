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

// WizardHandler exposes the quote wizard drafts of the calling user.
type WizardHandler struct {
	usecase usecase.IQuoteWizardUseCase
}

func NewWizardHandler(uc usecase.IQuoteWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// Start godoc
// @Summary      Start a quote wizard draft
// @Tags         wizard
// @Produce      json
// @Success      201  {object}  response.DraftResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	owner := middleware.OwnerID(middleware.SessionFrom(c))
	d, err := h.usecase.Start(c.Request.Context(), owner)
	if err != nil {
		log.Printf("[wizard][handler] start failed owner=%s err=%v", owner, err)
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

func (h *WizardHandler) Get(c *gin.Context) {
	h.respond(c, "get", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.Get(c.Request.Context(), owner, id)
	})
}

func (h *WizardHandler) UpdateItinerary(c *gin.Context) {
	var payload request.ItineraryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	h.respond(c, "itinerary", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.UpdateItinerary(c.Request.Context(), owner, id, payload.ToInput())
	})
}

func (h *WizardHandler) UpdateCargo(c *gin.Context) {
	var payload request.CargoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	h.respond(c, "cargo", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.UpdateCargo(c.Request.Context(), owner, id, payload.ToInput())
	})
}

func (h *WizardHandler) UpdateContacts(c *gin.Context) {
	var payload request.ContactsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	h.respond(c, "contacts", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.UpdateContacts(c.Request.Context(), owner, id, payload.ToInput())
	})
}

// RequestEstimates godoc
// @Summary      Price the draft's itinerary and cargo
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /wizard/{id}/estimates [post]
func (h *WizardHandler) RequestEstimates(c *gin.Context) {
	token := middleware.SessionFrom(c).Token
	h.respond(c, "estimates", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.RequestEstimates(c.Request.Context(), token, owner, id)
	})
}

func (h *WizardHandler) SelectEstimate(c *gin.Context) {
	var payload request.SelectEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	h.respond(c, "select", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.SelectEstimate(c.Request.Context(), owner, id, *payload.Index)
	})
}

func (h *WizardHandler) Next(c *gin.Context) {
	h.respond(c, "next", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.Advance(c.Request.Context(), owner, id)
	})
}

func (h *WizardHandler) Back(c *gin.Context) {
	h.respond(c, "back", func(owner, id string) (entities.WizardDraft, error) {
		return h.usecase.Back(c.Request.Context(), owner, id)
	})
}

// Submit godoc
// @Summary      Create the quote and its shipment from a completed draft
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      201  {object}  response.SubmitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	s := middleware.SessionFrom(c)
	owner, id := middleware.OwnerID(s), c.Param("id")
	log.Printf("[wizard][handler] submit start draft=%s owner=%s", id, owner)
	res, err := h.usecase.Submit(c.Request.Context(), s.Token, owner, id)
	if err != nil {
		log.Printf("[wizard][handler] submit failed draft=%s err=%v", id, err)
		writeError(c, mapWizardError(err))
		return
	}
	log.Printf("[wizard][handler] submit success draft=%s quote=%s shipment=%s", id, res.Quote.ID, res.Shipment.ID)
	c.JSON(http.StatusCreated, response.FromSubmit(res))
}

func (h *WizardHandler) respond(c *gin.Context, op string, fn func(owner, id string) (entities.WizardDraft, error)) {
	owner, id := middleware.OwnerID(middleware.SessionFrom(c)), c.Param("id")
	d, err := fn(owner, id)
	if err != nil {
		log.Printf("[wizard][handler] %s failed draft=%s err=%v", op, id, err)
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func mapWizardError(err error) *pkg.AppError {
	var notRecorded *usecase.SubmissionNotRecordedError
	if errors.As(err, &notRecorded) {
		appErr := pkg.NewDomainError("SUBMISSION_NOT_RECORDED", "Le devis et l'expédition ont été créés mais le brouillon n'a pas pu être mis à jour.", err, http.StatusBadGateway)
		appErr.Fields = map[string]string{"quoteId": notRecorded.QuoteID, "shipmentId": notRecorded.ShipmentID}
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrShipmentCreationFailed):
		return pkg.NewDomainError("SHIPMENT_CREATION_FAILED", "Le devis n'a pas pu être transformé en expédition.", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainErrorSimple("INVALID_DRAFT_ID", "Invalid draft id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrDraftConflict):
		return pkg.NewDomainErrorSimple("DRAFT_CONFLICT", "Draft was modified concurrently", http.StatusConflict)
	case errors.Is(err, entities.ErrDraftSubmitted):
		return pkg.NewDomainErrorSimple("DRAFT_SUBMITTED", "Draft already submitted", http.StatusConflict)
	case errors.Is(err, entities.ErrStepNotReached), errors.Is(err, entities.ErrNoPreviousStep), errors.Is(err, entities.ErrNotOnContactsStep):
		return pkg.NewDomainError("STEP_NOT_ALLOWED", "Step not allowed for this draft", err, http.StatusConflict)
	case errors.Is(err, entities.ErrEstimateRequired):
		return pkg.NewValidationError(map[string]string{"selectedEstimate": "required"})
	case errors.Is(err, entities.ErrEstimateIndex):
		return pkg.NewValidationError(map[string]string{"index": "out_of_range"})
	case errors.Is(err, usecase.ErrNoTariff):
		return pkg.NewDomainErrorSimple("NO_TARIFF", "Aucun tarif disponible pour cet itinéraire.", http.StatusUnprocessableEntity)
	}
	if appErr := mapBackendError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
