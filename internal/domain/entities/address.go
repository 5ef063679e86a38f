package entities

import "time"

type AddressType string

const (
	AddressSender    AddressType = "sender"
	AddressRecipient AddressType = "recipient"
	AddressBilling   AddressType = "billing"
)

var AddressTypes = []AddressType{AddressSender, AddressRecipient, AddressBilling}

func (t AddressType) IsValid() bool {
	switch t {
	case AddressSender, AddressRecipient, AddressBilling:
		return true
	}
	return false
}

// GPSLocation is an optional capture attached to an address.
type GPSLocation struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	Provider   string     `json:"provider,omitempty"`
	CapturedAt *time.Time `json:"capturedAt,omitempty"`
}

// Address is a saved contact/location record owned by the authenticated user.
type Address struct {
	ID          string
	Type        AddressType
	Label       string
	ContactName string
	Phone       string
	Line1       string
	Line2       string
	City        string
	PostalCode  string
	Country     string
	IsActive    bool
	GPS         *GPSLocation
}

// AddressBook groups addresses by type, keeping backend order inside a group.
type AddressBook map[AddressType][]Address

func GroupAddresses(addresses []Address) AddressBook {
	book := AddressBook{}
	for _, t := range AddressTypes {
		book[t] = []Address{}
	}
	for _, a := range addresses {
		book[a.Type] = append(book[a.Type], a)
	}
	return book
}
