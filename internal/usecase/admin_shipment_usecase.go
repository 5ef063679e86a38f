package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidShipmentStatus = errors.New("invalid shipment status")
)

var shipmentListSpec = listSpec[entities.Shipment]{
	searchFields: func(s entities.Shipment) []string {
		return []string{s.ID, s.TrackingCode, s.QuoteID, s.Origin, s.Destination, string(s.Status)}
	},
	status:     func(s entities.Shipment) string { return string(s.Status) },
	transports: func(s entities.Shipment) []string { return []string{string(s.TransportType)} },
	date:       func(s entities.Shipment) time.Time { return s.CreatedAt },
	sortKeys: map[string]func(a, b entities.Shipment) int{
		"createdAt":    func(a, b entities.Shipment) int { return compareTimes(a.CreatedAt, b.CreatedAt) },
		"trackingCode": func(a, b entities.Shipment) int { return compareStrings(a.TrackingCode, b.TrackingCode) },
		"status": func(a, b entities.Shipment) int {
			return entities.StageIndex(a.Status) - entities.StageIndex(b.Status)
		},
		"origin":      func(a, b entities.Shipment) int { return compareStrings(a.Origin, b.Origin) },
		"destination": func(a, b entities.Shipment) int { return compareStrings(a.Destination, b.Destination) },
	},
	defaultSort: "createdAt",
	defaultDesc: true,
}

// IAdminShipmentUseCase backs the admin shipments table.
type IAdminShipmentUseCase interface {
	List(ctx context.Context, token string, q ListQuery) (Page[entities.Shipment], error)
	UpdateStatus(ctx context.Context, token, id string, status entities.ShipmentStatus, comment string, q ListQuery) (Page[entities.Shipment], error)
	Delete(ctx context.Context, token, id string) error
}

type AdminShipmentUseCase struct {
	shipments interfaces.IShipmentGateway
	events    interfaces.IEventPublisher
}

var _ IAdminShipmentUseCase = (*AdminShipmentUseCase)(nil)

func NewAdminShipmentUseCase(shipments interfaces.IShipmentGateway, events interfaces.IEventPublisher) *AdminShipmentUseCase {
	return &AdminShipmentUseCase{shipments: shipments, events: events}
}

func (u *AdminShipmentUseCase) List(ctx context.Context, token string, q ListQuery) (Page[entities.Shipment], error) {
	all, err := u.shipments.List(ctx, token)
	if err != nil {
		log.Printf("[admin][usecase] list shipments failed err=%v", err)
		return Page[entities.Shipment]{}, err
	}
	return shipmentListSpec.apply(all, q, ShipmentsPageSize), nil
}

// UpdateStatus sets any of the fixed stages; stages are not ordered for admins.
// The stage is sent in its canonical spelling.
func (u *AdminShipmentUseCase) UpdateStatus(ctx context.Context, token, id string, status entities.ShipmentStatus, comment string, q ListQuery) (Page[entities.Shipment], error) {
	id = trimmed(id)
	if id == "" {
		return Page[entities.Shipment]{}, ErrInvalidShipmentID
	}
	idx := entities.StageIndex(status)
	if idx < 0 {
		return Page[entities.Shipment]{}, ErrInvalidShipmentStatus
	}
	stage := entities.ShipmentStages[idx]
	if err := u.shipments.UpdateStatus(ctx, token, id, stage, strings.TrimSpace(comment)); err != nil {
		log.Printf("[admin][usecase] shipment status update failed shipment=%s err=%v", id, err)
		return Page[entities.Shipment]{}, err
	}
	publish(ctx, u.events, entities.NewEvent(entities.EventShipmentStatus, id, map[string]any{"status": string(stage)}))
	log.Printf("[admin][usecase] shipment status updated shipment=%s status=%q", id, stage)
	return u.List(ctx, token, q)
}

func (u *AdminShipmentUseCase) Delete(ctx context.Context, token, id string) error {
	id = trimmed(id)
	if id == "" {
		return ErrInvalidShipmentID
	}
	if err := u.shipments.Delete(ctx, token, id); err != nil {
		log.Printf("[admin][usecase] shipment delete failed shipment=%s err=%v", id, err)
		return err
	}
	return nil
}
