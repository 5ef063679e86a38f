package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidTrackingCode = errors.New("invalid tracking code")
	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrTrackingUnavailable = errors.New("tracking unavailable")
)

// Tracking is a shipment placed on the fixed stage timeline. StageIndex is -1
// when the backend status is not one of the stages.
type Tracking struct {
	Shipment   entities.Shipment
	StageIndex int
	Stages     []entities.ShipmentStatus
}

type ITrackingUseCase interface {
	Track(ctx context.Context, code string) (Tracking, error)
}

type TrackingUseCase struct {
	shipments interfaces.IShipmentGateway
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(shipments interfaces.IShipmentGateway) *TrackingUseCase {
	return &TrackingUseCase{shipments: shipments}
}

// Track is public: the lookup is sent without credentials.
func (u *TrackingUseCase) Track(ctx context.Context, code string) (Tracking, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Tracking{}, ErrInvalidTrackingCode
	}
	s, err := u.shipments.Track(ctx, code)
	if err != nil {
		if trackingNotFound(err) {
			log.Printf("[tracking][usecase] not found code=%s", code)
			return Tracking{}, ErrShipmentNotFound
		}
		log.Printf("[tracking][usecase] lookup failed code=%s err=%v", code, err)
		return Tracking{}, fmt.Errorf("%w: %w", ErrTrackingUnavailable, err)
	}
	if s.ID == "" && s.TrackingCode == "" {
		return Tracking{}, ErrShipmentNotFound
	}
	return Tracking{Shipment: s, StageIndex: entities.StageIndex(s.Status), Stages: entities.ShipmentStages}, nil
}

// trackingNotFound matches a 404 or a backend message saying so, in French
// ("introuvable") or English ("not found", "not exist").
func trackingNotFound(err error) bool {
	if isBackendNotFound(err) {
		return true
	}
	if backendStatus(err) == 0 {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "introuvable") || strings.Contains(msg, "not")
}
