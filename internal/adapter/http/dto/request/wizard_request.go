package request

import "freight_portal/internal/domain/entities"

// Field-level rules live in the wizard itself so they can be reported per
// field; binding only checks the body shape.

type ItineraryRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (r ItineraryRequest) ToInput() entities.ItineraryInput {
	return entities.ItineraryInput{Origin: r.Origin, Destination: r.Destination}
}

// CargoRequest accepts dimensions as numbers or numeric strings.
type CargoRequest struct {
	TransportType entities.TransportType `json:"transportType"`
	PackageTypeID string                 `json:"packageTypeId"`
	Weight        entities.Numeric       `json:"weight"`
	Volume        entities.Numeric       `json:"volume"`
	Length        entities.Numeric       `json:"length"`
	Width         entities.Numeric       `json:"width"`
	Height        entities.Numeric       `json:"height"`
}

func (r CargoRequest) ToInput() entities.CargoInput {
	return entities.CargoInput{
		TransportType: r.TransportType,
		PackageTypeID: r.PackageTypeID,
		Weight:        r.Weight,
		Volume:        r.Volume,
		Length:        r.Length,
		Width:         r.Width,
		Height:        r.Height,
	}
}

type ContactsRequest struct {
	ProductType           string                `json:"productType"`
	ContactName           string                `json:"contactName"`
	ContactPhone          string                `json:"contactPhone"`
	ContactEmail          string                `json:"contactEmail"`
	RecipientContactName  string                `json:"recipientContactName"`
	RecipientContactPhone string                `json:"recipientContactPhone"`
	RecipientContactEmail string                `json:"recipientContactEmail"`
	PickupOption          entities.PickupOption `json:"pickupOption" binding:"omitempty,oneof=pickup dropoff"`
	ProductLocation       string                `json:"productLocation"`
	SenderAddressID       string                `json:"senderAddressId"`
	RecipientAddressID    string                `json:"recipientAddressId"`
	BillingAddressID      string                `json:"billingAddressId"`
	Notes                 string                `json:"notes" binding:"max=2000"`
}

func (r ContactsRequest) ToInput() entities.ContactsInput {
	return entities.ContactsInput{
		ProductType:           r.ProductType,
		ContactName:           r.ContactName,
		ContactPhone:          r.ContactPhone,
		ContactEmail:          r.ContactEmail,
		RecipientContactName:  r.RecipientContactName,
		RecipientContactPhone: r.RecipientContactPhone,
		RecipientContactEmail: r.RecipientContactEmail,
		PickupOption:          r.PickupOption,
		ProductLocation:       r.ProductLocation,
		SenderAddressID:       r.SenderAddressID,
		RecipientAddressID:    r.RecipientAddressID,
		BillingAddressID:      r.BillingAddressID,
		Notes:                 r.Notes,
	}
}

type SelectEstimateRequest struct {
	Index *int `json:"index" binding:"required,min=0"`
}
