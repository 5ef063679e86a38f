package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"freight_portal/internal/config"
	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

var (
	ErrPaymentReceiptNotFound         = errors.New("payment receipt not found")
	ErrInvalidPaymentQuoteID          = errors.New("invalid quote_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotPayable                = errors.New("quote not confirmed")
	ErrQuoteAlreadyPaid               = errors.New("quote payment already confirmed")
	ErrPaymentNotAcknowledged         = errors.New("payment recorded but not acknowledged by the backend")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const sandboxPayerEmail = "test_user_br@testuser.com"

// IQuotePaymentUseCase charges a confirmed quote and keeps a receipt.
//
//   - The amount always comes from the backend quote, never from the caller.
//   - An approved payment is reported to the backend ledger.
type IQuotePaymentUseCase interface {
	Pay(ctx context.Context, token, quoteID string, mpPayload json.RawMessage) (entities.PaymentReceipt, error)
	Latest(ctx context.Context, token, quoteID string) (entities.PaymentReceipt, error)
	ListByQuoteID(ctx context.Context, token, quoteID string) ([]entities.PaymentReceipt, error)
}

type QuotePaymentUseCase struct {
	receipts interfaces.IPaymentReceiptRepository
	quotes   interfaces.IQuoteGateway
	gateway  interfaces.IPaymentGateway
	ledger   interfaces.IPaymentLedgerGateway
	events   interfaces.IEventPublisher
	cfg      config.PaymentsConfig
	now      func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(receipts interfaces.IPaymentReceiptRepository, quotes interfaces.IQuoteGateway, gateway interfaces.IPaymentGateway, ledger interfaces.IPaymentLedgerGateway, events interfaces.IEventPublisher, cfg config.PaymentsConfig) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{receipts: receipts, quotes: quotes, gateway: gateway, ledger: ledger, events: events, cfg: cfg, now: time.Now}
}

func (u *QuotePaymentUseCase) Pay(ctx context.Context, token, quoteID string, mpPayload json.RawMessage) (entities.PaymentReceipt, error) {
	log.Printf("[payment][usecase] pay start raw_quote_id=%q payload_len=%d", quoteID, len(mpPayload))
	mockMode := u.cfg.MockMode
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.PaymentReceipt{}, ErrInvalidPaymentQuoteID
	}
	if strings.TrimSpace(token) == "" {
		return entities.PaymentReceipt{}, ErrSessionRequired
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload quote_id=%s", quoteID)
			return entities.PaymentReceipt{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.PaymentReceipt{}, errors.New("payment gateway not configured")
	}

	quote, err := u.loadQuote(ctx, token, quoteID)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if quote.PaymentStatus == entities.QuotePaymentConfirmed {
		return entities.PaymentReceipt{}, ErrQuoteAlreadyPaid
	}
	if quote.Status != entities.QuoteStatusConfirmed {
		log.Printf("[payment][usecase] quote not payable quote_id=%s status=%s", quoteID, quote.Status)
		return entities.PaymentReceipt{}, ErrQuoteNotPayable
	}
	log.Printf("[payment][usecase] quote loaded quote_id=%s price=%.2f currency=%s", quoteID, quote.EstimatedPrice, quote.Currency)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload is not an object quote_id=%s", quoteID)
		return entities.PaymentReceipt{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id quote_id=%s", quoteID)
			return entities.PaymentReceipt{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer quote_id=%s", quoteID)
			return entities.PaymentReceipt{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quote %s %s -> %s", quoteID, quote.Origin, quote.Destination)
	}
	reqMap["transaction_amount"] = quote.EstimatedPrice
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed quote_id=%s err=%v", quoteID, err)
		return entities.PaymentReceipt{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	r := entities.PaymentReceipt{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Amount:             quote.EstimatedPrice,
		Currency:           quote.Currency,
		Date:               u.now().UTC(),
		Status:             receiptStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.receipts.Create(ctx, r)
	if err != nil {
		log.Printf("[payment][usecase] receipt create failed quote_id=%s payment_id=%s err=%v", quoteID, r.ID, err)
		return entities.PaymentReceipt{}, err
	}

	publish(ctx, u.events, entities.NewEvent(entities.EventPaymentRecorded, quoteID, map[string]any{
		"paymentId": created.ID,
		"status":    string(created.Status),
		"amount":    created.Amount,
		"currency":  created.Currency,
	}))

	if created.Status == entities.PaymentStatusApproved && u.ledger != nil {
		err := u.ledger.Confirm(ctx, token, entities.PaymentConfirmation{
			QuoteID:           quoteID,
			ProviderPaymentID: created.ID,
			Provider:          "mercadopago",
			Amount:            created.Amount,
			Currency:          created.Currency,
			Status:            providerStatus,
		})
		if err != nil {
			log.Printf("[payment][usecase] ledger confirm failed quote_id=%s payment_id=%s err=%v", quoteID, created.ID, err)
			return created, fmt.Errorf("%w: %w", ErrPaymentNotAcknowledged, err)
		}
	}
	log.Printf("[payment][usecase] pay success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)
	return created, nil
}

// Latest returns the most recent receipt for a quote the caller can see.
func (u *QuotePaymentUseCase) Latest(ctx context.Context, token, quoteID string) (entities.PaymentReceipt, error) {
	list, err := u.ListByQuoteID(ctx, token, quoteID)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if len(list) == 0 {
		return entities.PaymentReceipt{}, ErrPaymentReceiptNotFound
	}
	return list[0], nil
}

// ListByQuoteID reads receipts only after the backend has served the quote
// to the caller's token.
func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, token, quoteID string) ([]entities.PaymentReceipt, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	if strings.TrimSpace(token) == "" {
		return nil, ErrSessionRequired
	}
	if _, err := u.loadQuote(ctx, token, quoteID); err != nil {
		return nil, err
	}
	return u.receipts.ListByQuoteID(ctx, quoteID)
}

// loadQuote hides quotes the backend refuses to show as not found.
func (u *QuotePaymentUseCase) loadQuote(ctx context.Context, token, quoteID string) (entities.Quote, error) {
	quote, err := u.quotes.Get(ctx, token, quoteID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		switch backendStatus(err) {
		case http.StatusNotFound, http.StatusForbidden:
			return entities.Quote{}, ErrQuoteNotFound
		}
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return quote, nil
}

func receiptStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, when neither id nor email is
// given, a sandbox email.
func (u *QuotePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if u.cfg.TestPayerEmail != "" {
		payer["email"] = u.cfg.TestPayerEmail
	} else if u.cfg.Sandbox() {
		payer["email"] = sandboxPayerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which test tokens accept more reliably.
func (u *QuotePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.cfg.Sandbox() {
		return
	}
	if u.cfg.TestPayerUserID == "" || u.cfg.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.cfg.TestPayerUserID {
		return
	}
	payer["email"] = u.cfg.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
