package request

import "freight_portal/internal/domain/entities"

type ShipmentStatusRequest struct {
	Status  entities.ShipmentStatus `json:"status" binding:"required"`
	Comment string                  `json:"comment" binding:"max=500"`
}

// PricingRequest creates a tariff, or replaces it when ID is set.
type PricingRequest struct {
	ID                   string `json:"id"`
	Origin               string `json:"origin"`
	Destination          string `json:"destination"`
	OriginAddressID      string `json:"originAddressId"`
	DestinationAddressID string `json:"destinationAddressId"`
	Currency             string `json:"currency"`

	Rates map[entities.TransportType]entities.TransportPricing `json:"rates"`
}

func (r PricingRequest) ToEntity() entities.Pricing {
	return entities.Pricing{
		ID:                   r.ID,
		Origin:               r.Origin,
		Destination:          r.Destination,
		OriginAddressID:      r.OriginAddressID,
		DestinationAddressID: r.DestinationAddressID,
		Currency:             r.Currency,
		Rates:                r.Rates,
	}
}

type PackageTypeRequest struct {
	ID                    string                   `json:"id"`
	Name                  string                   `json:"name"`
	Description           string                   `json:"description"`
	FlatPrice             float64                  `json:"flatPrice"`
	AllowedTransportTypes []entities.TransportType `json:"allowedTransportTypes"`
}

func (r PackageTypeRequest) ToEntity() entities.PackageType {
	return entities.PackageType{
		ID:                    r.ID,
		Name:                  r.Name,
		Description:           r.Description,
		FlatPrice:             r.FlatPrice,
		AllowedTransportTypes: r.AllowedTransportTypes,
	}
}
