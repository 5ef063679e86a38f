package entities

import (
	"strings"
	"time"
)

type ShipmentStatus string

const (
	ShipmentPending        ShipmentStatus = "En attente"
	ShipmentPreparing      ShipmentStatus = "Préparation"
	ShipmentInTransit      ShipmentStatus = "En transit"
	ShipmentCustomsHold    ShipmentStatus = "Bloqué douane"
	ShipmentArrived        ShipmentStatus = "Arrivé à destination"
	ShipmentOutForDelivery ShipmentStatus = "En livraison"
	ShipmentDelivered      ShipmentStatus = "Livré"
	ShipmentRejected       ShipmentStatus = "Rejeté"
)

// ShipmentStages is the fixed ordered flow rendered by the tracking timeline.
// Rejeté is the alternate terminal stage.
var ShipmentStages = []ShipmentStatus{
	ShipmentPending,
	ShipmentPreparing,
	ShipmentInTransit,
	ShipmentCustomsHold,
	ShipmentArrived,
	ShipmentOutForDelivery,
	ShipmentDelivered,
	ShipmentRejected,
}

// StageIndex returns the position of status in ShipmentStages, or -1.
func StageIndex(status ShipmentStatus) int {
	s := strings.TrimSpace(string(status))
	for i, stage := range ShipmentStages {
		if strings.EqualFold(string(stage), s) {
			return i
		}
	}
	return -1
}

func (s ShipmentStatus) IsValid() bool { return StageIndex(s) >= 0 }

type StatusEvent struct {
	Status    ShipmentStatus `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Comment   string         `json:"comment,omitempty"`
}

// Shipment is the trackable execution of a confirmed quote.
type Shipment struct {
	ID            string
	QuoteID       string
	TrackingCode  string
	Status        ShipmentStatus
	StatusHistory []StatusEvent
	Origin        string
	Destination   string
	TransportType TransportType
	CreatedAt     time.Time
}
