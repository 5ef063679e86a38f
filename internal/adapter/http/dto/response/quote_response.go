package response

import (
	"time"

	"freight_portal/internal/domain/entities"
)

type QuoteResponse struct {
	ID            string                 `json:"id"`
	Origin        string                 `json:"origin"`
	Destination   string                 `json:"destination"`
	TransportType entities.TransportType `json:"transportType"`
	PackageTypeID string                 `json:"packageTypeId,omitempty"`

	Weight *float64 `json:"weight,omitempty"`
	Volume *float64 `json:"volume,omitempty"`
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	ProductType           string                `json:"productType,omitempty"`
	ContactName           string                `json:"contactName,omitempty"`
	ContactPhone          string                `json:"contactPhone,omitempty"`
	ContactEmail          string                `json:"contactEmail,omitempty"`
	RecipientContactName  string                `json:"recipientContactName,omitempty"`
	RecipientContactPhone string                `json:"recipientContactPhone,omitempty"`
	RecipientContactEmail string                `json:"recipientContactEmail,omitempty"`
	PickupOption          entities.PickupOption `json:"pickupOption,omitempty"`
	ProductLocation       string                `json:"productLocation,omitempty"`
	SenderAddressID       string                `json:"senderAddressId,omitempty"`
	RecipientAddressID    string                `json:"recipientAddressId,omitempty"`
	BillingAddressID      string                `json:"billingAddressId,omitempty"`

	EstimatedPrice float64                     `json:"estimatedPrice"`
	Currency       string                      `json:"currency,omitempty"`
	Provider       string                      `json:"provider,omitempty"`
	Status         entities.QuoteStatus        `json:"status"`
	PaymentStatus  entities.QuotePaymentStatus `json:"paymentStatus,omitempty"`
	ShipmentID     string                      `json:"shipmentId,omitempty"`
	CreatedAt      *time.Time                  `json:"createdAt,omitempty"`
	Actions        []entities.QuoteAction      `json:"actions"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	actions := q.Actions()
	if actions == nil {
		actions = []entities.QuoteAction{}
	}
	return QuoteResponse{
		ID:                    q.ID,
		Origin:                q.Origin,
		Destination:           q.Destination,
		TransportType:         q.TransportType,
		PackageTypeID:         q.PackageTypeID,
		Weight:                q.Weight,
		Volume:                q.Volume,
		Length:                q.Length,
		Width:                 q.Width,
		Height:                q.Height,
		ProductType:           q.ProductType,
		ContactName:           q.ContactName,
		ContactPhone:          q.ContactPhone,
		ContactEmail:          q.ContactEmail,
		RecipientContactName:  q.RecipientContactName,
		RecipientContactPhone: q.RecipientContactPhone,
		RecipientContactEmail: q.RecipientContactEmail,
		PickupOption:          q.PickupOption,
		ProductLocation:       q.ProductLocation,
		SenderAddressID:       q.SenderAddressID,
		RecipientAddressID:    q.RecipientAddressID,
		BillingAddressID:      q.BillingAddressID,
		EstimatedPrice:        q.EstimatedPrice,
		Currency:              q.Currency,
		Provider:              q.Provider,
		Status:                q.Status,
		PaymentStatus:         q.PaymentStatus,
		ShipmentID:            q.ShipmentID,
		CreatedAt:             timePtr(q.CreatedAt),
		Actions:               actions,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
