package response

import (
	"time"

	"freight_portal/internal/domain/entities"
)

type PricingResponse struct {
	ID                   string                                               `json:"id"`
	Origin               string                                               `json:"origin"`
	Destination          string                                               `json:"destination"`
	OriginAddressID      string                                               `json:"originAddressId,omitempty"`
	DestinationAddressID string                                               `json:"destinationAddressId,omitempty"`
	Currency             string                                               `json:"currency"`
	Rates                map[entities.TransportType]entities.TransportPricing `json:"rates"`
	CreatedAt            *time.Time                                           `json:"createdAt,omitempty"`
}

func FromPricing(p entities.Pricing) PricingResponse {
	rates := p.Rates
	if rates == nil {
		rates = map[entities.TransportType]entities.TransportPricing{}
	}
	return PricingResponse{
		ID:                   p.ID,
		Origin:               p.Origin,
		Destination:          p.Destination,
		OriginAddressID:      p.OriginAddressID,
		DestinationAddressID: p.DestinationAddressID,
		Currency:             p.Currency,
		Rates:                rates,
		CreatedAt:            timePtr(p.CreatedAt),
	}
}

type PackageTypeResponse struct {
	ID                    string                   `json:"id"`
	Name                  string                   `json:"name"`
	Description           string                   `json:"description,omitempty"`
	FlatPrice             float64                  `json:"flatPrice"`
	AllowedTransportTypes []entities.TransportType `json:"allowedTransportTypes"`
	CreatedAt             *time.Time               `json:"createdAt,omitempty"`
}

func FromPackageType(p entities.PackageType) PackageTypeResponse {
	allowed := p.AllowedTransportTypes
	if allowed == nil {
		allowed = []entities.TransportType{}
	}
	return PackageTypeResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Description:           p.Description,
		FlatPrice:             p.FlatPrice,
		AllowedTransportTypes: allowed,
		CreatedAt:             timePtr(p.CreatedAt),
	}
}
