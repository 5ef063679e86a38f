package response

import (
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase"
)

type DraftResponse struct {
	ID               string                `json:"id"`
	Step             entities.WizardStep   `json:"step"`
	Form             entities.WizardForm   `json:"form"`
	Estimates        []entities.Estimate   `json:"estimates"`
	SelectedEstimate *int                  `json:"selectedEstimate"`
	QuoteID          string                `json:"quoteId,omitempty"`
	ShipmentID       string                `json:"shipmentId,omitempty"`
	Compensation     entities.Compensation `json:"compensation,omitempty"`
	Version          int                   `json:"version"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

func FromDraft(d entities.WizardDraft) DraftResponse {
	estimates := d.Estimates
	if estimates == nil {
		estimates = []entities.Estimate{}
	}
	return DraftResponse{
		ID:               d.ID,
		Step:             d.Step,
		Form:             d.Form,
		Estimates:        estimates,
		SelectedEstimate: d.SelectedEstimate,
		QuoteID:          d.QuoteID,
		ShipmentID:       d.ShipmentID,
		Compensation:     d.Compensation,
		Version:          d.Version,
		UpdatedAt:        d.UpdatedAt,
	}
}

type SubmitResponse struct {
	Draft    DraftResponse    `json:"draft"`
	Quote    QuoteResponse    `json:"quote"`
	Shipment ShipmentResponse `json:"shipment"`
}

func FromSubmit(r usecase.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Draft:    FromDraft(r.Draft),
		Quote:    FromQuote(r.Quote),
		Shipment: FromShipment(r.Shipment),
	}
}
