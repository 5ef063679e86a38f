package interfaces

//go:generate mockgen -source=payment_receipt_repository_interface.go -destination=mocks/payment_receipt_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"freight_portal/internal/domain/entities"
)

// IPaymentReceiptRepository abstracts DynamoDB persistence for PaymentReceipt.
type IPaymentReceiptRepository interface {
	Create(ctx context.Context, r entities.PaymentReceipt) (entities.PaymentReceipt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentReceipt, error)
}
