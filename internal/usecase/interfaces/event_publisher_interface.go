package interfaces

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_interface_mock.go -package=mock_interfaces

import (
	"context"

	"freight_portal/internal/domain/entities"
)

// IEventPublisher publishes portal domain events. Publishing is best effort:
// callers log failures and carry on.
type IEventPublisher interface {
	Publish(ctx context.Context, evt entities.Event) error
}
