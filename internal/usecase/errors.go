package usecase

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrSessionRequired = errors.New("session required")
)

// ValidationError carries per-field violation codes. It never reaches the
// backend: validation runs before any call.
type ValidationError struct {
	Fields entities.Violations
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(v entities.Violations) error {
	return &ValidationError{Fields: v}
}

// statusCoder is implemented by backend HTTP errors.
type statusCoder interface {
	StatusCode() int
}

func backendStatus(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}

func isBackendNotFound(err error) bool {
	return backendStatus(err) == http.StatusNotFound
}

// publish sends an event; failures are logged and never fail the caller.
func publish(ctx context.Context, pub interfaces.IEventPublisher, evt entities.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, evt); err != nil {
		log.Printf("[events][usecase] publish failed type=%s key=%s err=%v", evt.Type, evt.Key, err)
	}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
