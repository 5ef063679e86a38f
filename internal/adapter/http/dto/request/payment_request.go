package request

import "encoding/json"

// QuotePaymentRequest documents the payment body. `mp_payload` is forwarded
// to Mercado Pago as-is; a bare payment object is accepted too.
type QuotePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
