package response

import (
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase"
)

type ShipmentResponse struct {
	ID            string                  `json:"id"`
	QuoteID       string                  `json:"quoteId,omitempty"`
	TrackingCode  string                  `json:"trackingCode,omitempty"`
	Status        entities.ShipmentStatus `json:"status"`
	StatusHistory []entities.StatusEvent  `json:"statusHistory"`
	Origin        string                  `json:"origin,omitempty"`
	Destination   string                  `json:"destination,omitempty"`
	TransportType entities.TransportType  `json:"transportType,omitempty"`
	CreatedAt     *time.Time              `json:"createdAt,omitempty"`
}

func FromShipment(s entities.Shipment) ShipmentResponse {
	history := s.StatusHistory
	if history == nil {
		history = []entities.StatusEvent{}
	}
	return ShipmentResponse{
		ID:            s.ID,
		QuoteID:       s.QuoteID,
		TrackingCode:  s.TrackingCode,
		Status:        s.Status,
		StatusHistory: history,
		Origin:        s.Origin,
		Destination:   s.Destination,
		TransportType: s.TransportType,
		CreatedAt:     timePtr(s.CreatedAt),
	}
}

// TrackingResponse places the shipment on the stage timeline; stageIndex is
// -1 for a status outside it.
type TrackingResponse struct {
	Shipment   ShipmentResponse          `json:"shipment"`
	StageIndex int                       `json:"stageIndex"`
	Stages     []entities.ShipmentStatus `json:"stages"`
}

func FromTracking(t usecase.Tracking) TrackingResponse {
	return TrackingResponse{Shipment: FromShipment(t.Shipment), StageIndex: t.StageIndex, Stages: t.Stages}
}
