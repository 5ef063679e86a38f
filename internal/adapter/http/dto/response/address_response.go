package response

import "freight_portal/internal/domain/entities"

type AddressResponse struct {
	ID          string                `json:"id"`
	Type        entities.AddressType  `json:"type"`
	Label       string                `json:"label"`
	ContactName string                `json:"contactName,omitempty"`
	Phone       string                `json:"phone,omitempty"`
	Line1       string                `json:"line1"`
	Line2       string                `json:"line2,omitempty"`
	City        string                `json:"city"`
	PostalCode  string                `json:"postalCode"`
	Country     string                `json:"country"`
	IsActive    bool                  `json:"isActive"`
	GPS         *entities.GPSLocation `json:"gps,omitempty"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		ID:          a.ID,
		Type:        a.Type,
		Label:       a.Label,
		ContactName: a.ContactName,
		Phone:       a.Phone,
		Line1:       a.Line1,
		Line2:       a.Line2,
		City:        a.City,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
		IsActive:    a.IsActive,
		GPS:         a.GPS,
	}
}

// AddressBookResponse always carries the three groups.
type AddressBookResponse map[entities.AddressType][]AddressResponse

func FromAddressBook(book entities.AddressBook) AddressBookResponse {
	out := AddressBookResponse{}
	for _, t := range entities.AddressTypes {
		list := make([]AddressResponse, 0, len(book[t]))
		for _, a := range book[t] {
			list = append(list, FromAddress(a))
		}
		out[t] = list
	}
	return out
}
