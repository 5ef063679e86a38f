package backend

import (
	"context"
	"net/http"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

// PaymentLedgerGateway tells the backend that a quote has been paid.
type PaymentLedgerGateway struct {
	client *Client
}

var _ interfaces.IPaymentLedgerGateway = (*PaymentLedgerGateway)(nil)

func NewPaymentLedgerGateway(client *Client) *PaymentLedgerGateway {
	return &PaymentLedgerGateway{client: client}
}

func (g *PaymentLedgerGateway) Confirm(ctx context.Context, token string, c entities.PaymentConfirmation) error {
	_, err := g.client.Request(ctx, "/api/payments/confirm", Options{Method: http.MethodPost, Token: token, Body: c})
	return err
}
