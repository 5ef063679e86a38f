package response

import (
	"time"

	"freight_portal/internal/domain/entities"
)

type PaymentReceiptResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPaymentReceipt(p entities.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}
