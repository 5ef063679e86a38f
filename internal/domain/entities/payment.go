package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentReceipt is the portal's own record of a quote payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// ProviderPayloadRaw keeps the Mercado Pago response for traceability.
type PaymentReceipt struct {
	ID       string
	QuoteID  string
	Amount   float64
	Currency string
	Date     time.Time
	Status   PaymentStatus

	ProviderPayloadRaw json.RawMessage
	ProviderPayload    map[string]interface{}
}

// PaymentConfirmation is what the backend is told once the provider approved.
type PaymentConfirmation struct {
	QuoteID           string  `json:"quoteId"`
	ProviderPaymentID string  `json:"providerPaymentId"`
	Provider          string  `json:"provider"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
}
