package interfaces

//go:generate mockgen -source=backend_gateway_interfaces.go -destination=mocks/backend_gateway_interfaces_mock.go -package=mock_interfaces

import (
	"context"

	"freight_portal/internal/domain/entities"
)

// The freight REST backend owns quotes, shipments, addresses, pricing, package
// types, users and payment confirmations. Every call carries the caller's
// bearer token; an empty token sends none.

type IQuoteGateway interface {
	List(ctx context.Context, token string) ([]entities.Quote, error)
	Get(ctx context.Context, token, id string) (entities.Quote, error)
	Estimate(ctx context.Context, token string, payload map[string]any) ([]entities.Estimate, error)
	Create(ctx context.Context, token string, payload map[string]any) (entities.Quote, error)
	Delete(ctx context.Context, token, id string) error
	UpdateStatus(ctx context.Context, token, id string, status entities.QuoteStatus) error
	Metadata(ctx context.Context, token string) (entities.QuoteMetadata, error)
}

type IShipmentGateway interface {
	List(ctx context.Context, token string) ([]entities.Shipment, error)
	CreateFromQuote(ctx context.Context, token, quoteID string) (entities.Shipment, error)
	UpdateStatus(ctx context.Context, token, id string, status entities.ShipmentStatus, comment string) error
	Delete(ctx context.Context, token, id string) error
	Track(ctx context.Context, code string) (entities.Shipment, error)
}

type IAddressGateway interface {
	List(ctx context.Context, token string) ([]entities.Address, error)
	Create(ctx context.Context, token string, payload map[string]any) (entities.Address, error)
	Update(ctx context.Context, token, id string, payload map[string]any) (entities.Address, error)
	Delete(ctx context.Context, token, id string) error
}

type ICatalogGateway interface {
	ListPricing(ctx context.Context, token string) ([]entities.Pricing, error)
	SavePricing(ctx context.Context, token string, p entities.Pricing) (entities.Pricing, error)
	DeletePricing(ctx context.Context, token, id string) error
	ListPackageTypes(ctx context.Context, token string) ([]entities.PackageType, error)
	SavePackageType(ctx context.Context, token string, p entities.PackageType) (entities.PackageType, error)
	DeletePackageType(ctx context.Context, token, id string) error
	ListSchedules(ctx context.Context, token string) ([]entities.Schedule, error)
}

type IUserGateway interface {
	Me(ctx context.Context, token string) (entities.User, error)
}

type IPaymentLedgerGateway interface {
	Confirm(ctx context.Context, token string, c entities.PaymentConfirmation) error
}
