package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "freight_portal/internal/adapter/http/dto/request"
	response "freight_portal/internal/adapter/http/dto/response"
	"freight_portal/internal/adapter/http/middleware"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles Mercado Pago payments for confirmed quotes.
type PaymentHandler struct {
	usecase  usecase.IQuotePaymentUseCase
	mockMode bool
}

func NewPaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// Pay godoc
// @Summary      Pay a confirmed quote
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        quote_id  path      string                      true  "Quote ID"
// @Param        payload   body      request.QuotePaymentRequest  false "Mercado Pago payload, bare or wrapped in mp_payload"
// @Success      200       {object}  response.PaymentReceiptResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Router       /payments/{quote_id} [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] create start quote_id=%s", quoteID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			writeError(c, errInvalidRequest)
			return
		}
	}

	token := middleware.SessionFrom(c).Token
	created, err := h.usecase.Pay(c.Request.Context(), token, quoteID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed quote_id=%s err=%v", quoteID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPaymentReceipt(created))
}

// Latest returns the most recent receipt recorded for a quote.
func (h *PaymentHandler) Latest(c *gin.Context) {
	quoteID := c.Param("quote_id")
	latest, err := h.usecase.Latest(c.Request.Context(), middleware.SessionFrom(c).Token, quoteID)
	if err != nil {
		log.Printf("[payment][handler] get-by-quote failed quote_id=%s err=%v", quoteID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] get-by-quote success quote_id=%s payment_id=%s status=%s", quoteID, latest.ID, latest.Status)
	c.JSON(http.StatusOK, response.FromPaymentReceipt(latest))
}

func (h *PaymentHandler) History(c *gin.Context) {
	quoteID := c.Param("quote_id")
	receipts, err := h.usecase.ListByQuoteID(c.Request.Context(), middleware.SessionFrom(c).Token, quoteID)
	if err != nil {
		log.Printf("[payment][handler] history failed quote_id=%s err=%v", quoteID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	out := make([]response.PaymentReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, response.FromPaymentReceipt(r))
	}
	c.JSON(http.StatusOK, out)
}

// readMPPayload accepts either the bare Mercado Pago body or one wrapped in
// an mp_payload envelope.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.QuotePaymentRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		if strings.TrimSpace(string(envelope.MPPayload)) == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPayable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_CONFIRMED", "Quote not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyPaid):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_PAID", "Quote already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotAcknowledged):
		return pkg.NewDomainError("PAYMENT_NOT_ACKNOWLEDGED", "Payment approved but not yet recorded on the quote", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentReceiptNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	}
	if appErr := mapBackendError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
