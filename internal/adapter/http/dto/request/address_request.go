package request

import "freight_portal/internal/domain/entities"

// GPSRequest takes coordinates as numbers or free text; unparseable values
// simply drop the GPS block.
type GPSRequest struct {
	Latitude   entities.Numeric `json:"latitude"`
	Longitude  entities.Numeric `json:"longitude"`
	Accuracy   entities.Numeric `json:"accuracy"`
	Provider   string           `json:"provider"`
	CapturedAt string           `json:"capturedAt"`
}

type AddressRequest struct {
	Type        entities.AddressType `json:"type"`
	Label       string               `json:"label"`
	ContactName string               `json:"contactName"`
	Phone       string               `json:"phone"`
	Line1       string               `json:"line1"`
	Line2       string               `json:"line2"`
	City        string               `json:"city"`
	PostalCode  string               `json:"postalCode"`
	Country     string               `json:"country"`
	IsActive    *bool                `json:"isActive"`
	GPS         *GPSRequest          `json:"gps"`
}

func (r AddressRequest) ToInput() entities.AddressInput {
	in := entities.AddressInput{
		Type:        r.Type,
		Label:       r.Label,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Line1:       r.Line1,
		Line2:       r.Line2,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
		IsActive:    r.IsActive,
	}
	if r.GPS != nil {
		in.Latitude = string(r.GPS.Latitude)
		in.Longitude = string(r.GPS.Longitude)
		in.Accuracy = string(r.GPS.Accuracy)
		in.Provider = r.GPS.Provider
		in.CapturedAt = r.GPS.CapturedAt
	}
	return in
}
