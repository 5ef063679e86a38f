package entities

import "time"

type EventType string

const (
	EventQuoteSubmitted   EventType = "quote.submitted"
	EventQuoteCompensated EventType = "quote.compensated"
	EventQuoteOrphaned    EventType = "quote.orphaned"
	EventQuoteStatus      EventType = "quote.status_changed"
	EventShipmentCreated  EventType = "shipment.created"
	EventShipmentStatus   EventType = "shipment.status_changed"
	EventPaymentRecorded  EventType = "payment.recorded"
)

// Event is a portal domain event published to the event stream.
type Event struct {
	Type       EventType      `json:"type"`
	Key        string         `json:"key"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func NewEvent(t EventType, key string, payload map[string]any) Event {
	return Event{Type: t, Key: key, OccurredAt: time.Now().UTC(), Payload: payload}
}
