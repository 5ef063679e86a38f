package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrUnknownQuoteAction   = errors.New("unknown quote action")
	ErrTransitionNotAllowed = errors.New("quote status transition not allowed")
	ErrShipmentNotAllowed   = errors.New("quote cannot be converted to a shipment")
)

var quoteListSpec = listSpec[entities.Quote]{
	searchFields: func(q entities.Quote) []string {
		return []string{q.ID, q.Origin, q.Destination, q.ContactName, q.ContactEmail, q.RecipientContactName, q.Provider, q.ProductType}
	},
	status:     func(q entities.Quote) string { return string(q.Status) },
	transports: func(q entities.Quote) []string { return []string{string(q.TransportType)} },
	provider:   func(q entities.Quote) string { return q.Provider },
	date:       func(q entities.Quote) time.Time { return q.CreatedAt },
	sortKeys: map[string]func(a, b entities.Quote) int{
		"createdAt":      func(a, b entities.Quote) int { return compareTimes(a.CreatedAt, b.CreatedAt) },
		"estimatedPrice": func(a, b entities.Quote) int { return compareFloats(a.EstimatedPrice, b.EstimatedPrice) },
		"status":         func(a, b entities.Quote) int { return compareStrings(string(a.Status), string(b.Status)) },
		"origin":         func(a, b entities.Quote) int { return compareStrings(a.Origin, b.Origin) },
		"destination":    func(a, b entities.Quote) int { return compareStrings(a.Destination, b.Destination) },
		"provider":       func(a, b entities.Quote) int { return compareStrings(a.Provider, b.Provider) },
	},
	defaultSort: "createdAt",
	defaultDesc: true,
}

// IAdminQuoteUseCase backs the admin quotes table.
type IAdminQuoteUseCase interface {
	List(ctx context.Context, token string, q ListQuery) (Page[entities.Quote], error)
	ApplyAction(ctx context.Context, token, id string, action entities.QuoteAction, q ListQuery) (Page[entities.Quote], error)
	CreateShipment(ctx context.Context, token, id string) (entities.Shipment, error)
}

type AdminQuoteUseCase struct {
	quotes    interfaces.IQuoteGateway
	shipments interfaces.IShipmentGateway
	events    interfaces.IEventPublisher
}

var _ IAdminQuoteUseCase = (*AdminQuoteUseCase)(nil)

func NewAdminQuoteUseCase(quotes interfaces.IQuoteGateway, shipments interfaces.IShipmentGateway, events interfaces.IEventPublisher) *AdminQuoteUseCase {
	return &AdminQuoteUseCase{quotes: quotes, shipments: shipments, events: events}
}

func (u *AdminQuoteUseCase) List(ctx context.Context, token string, q ListQuery) (Page[entities.Quote], error) {
	all, err := u.quotes.List(ctx, token)
	if err != nil {
		log.Printf("[admin][usecase] list quotes failed err=%v", err)
		return Page[entities.Quote]{}, err
	}
	return quoteListSpec.apply(all, q, QuotesPageSize), nil
}

// ApplyAction moves a quote to the status the action targets, then returns
// the reloaded table.
func (u *AdminQuoteUseCase) ApplyAction(ctx context.Context, token, id string, action entities.QuoteAction, q ListQuery) (Page[entities.Quote], error) {
	target, ok := action.TargetStatus()
	if !ok {
		return Page[entities.Quote]{}, ErrUnknownQuoteAction
	}
	quote, err := u.load(ctx, token, id)
	if err != nil {
		return Page[entities.Quote]{}, err
	}
	if !quote.CanTransition(target) {
		log.Printf("[admin][usecase] transition refused quote=%s from=%s to=%s", quote.ID, quote.Status, target)
		return Page[entities.Quote]{}, ErrTransitionNotAllowed
	}
	if err := u.quotes.UpdateStatus(ctx, token, quote.ID, target); err != nil {
		log.Printf("[admin][usecase] quote status update failed quote=%s err=%v", quote.ID, err)
		return Page[entities.Quote]{}, err
	}
	publish(ctx, u.events, entities.NewEvent(entities.EventQuoteStatus, quote.ID, map[string]any{
		"from": string(quote.Status),
		"to":   string(target),
	}))
	log.Printf("[admin][usecase] quote status updated quote=%s from=%s to=%s", quote.ID, quote.Status, target)
	return u.List(ctx, token, q)
}

// CreateShipment converts a confirmed, paid quote that has no shipment yet.
func (u *AdminQuoteUseCase) CreateShipment(ctx context.Context, token, id string) (entities.Shipment, error) {
	quote, err := u.load(ctx, token, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if !quote.CanCreateShipment() {
		log.Printf("[admin][usecase] shipment refused quote=%s status=%s payment=%s shipment=%s", quote.ID, quote.Status, quote.PaymentStatus, quote.ShipmentID)
		return entities.Shipment{}, ErrShipmentNotAllowed
	}
	s, err := u.shipments.CreateFromQuote(ctx, token, quote.ID)
	if err != nil {
		log.Printf("[admin][usecase] shipment create failed quote=%s err=%v", quote.ID, err)
		return entities.Shipment{}, err
	}
	publish(ctx, u.events, entities.NewEvent(entities.EventShipmentCreated, s.ID, map[string]any{
		"quoteId":      quote.ID,
		"trackingCode": s.TrackingCode,
	}))
	return s, nil
}

func (u *AdminQuoteUseCase) load(ctx context.Context, token, id string) (entities.Quote, error) {
	id = trimmed(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	quote, err := u.quotes.Get(ctx, token, id)
	if err != nil {
		if isBackendNotFound(err) {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return quote, nil
}
