package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

type ShipmentGateway struct {
	client *Client
}

var _ interfaces.IShipmentGateway = (*ShipmentGateway)(nil)

func NewShipmentGateway(client *Client) *ShipmentGateway {
	return &ShipmentGateway{client: client}
}

func (g *ShipmentGateway) List(ctx context.Context, token string) ([]entities.Shipment, error) {
	data, err := g.client.RequestWithFallback(ctx, adminFirst("/api/shipments"), Options{Token: token})
	if err != nil {
		return nil, err
	}
	items := listOf(data, "shipments")
	out := make([]entities.Shipment, 0, len(items))
	for _, it := range items {
		out = append(out, normalizeShipment(it))
	}
	return out, nil
}

func (g *ShipmentGateway) CreateFromQuote(ctx context.Context, token, quoteID string) (entities.Shipment, error) {
	data, err := g.client.RequestWithFallback(ctx, []string{
		"/api/shipments/from-quote/" + url.PathEscape(quoteID),
		"/api/shipments",
	}, Options{Method: http.MethodPost, Token: token, Body: map[string]any{"quoteId": quoteID}})
	if err != nil {
		return entities.Shipment{}, err
	}
	s := normalizeShipment(unwrap(data, "shipment"))
	if s.ID == "" {
		return entities.Shipment{}, ErrInvalidResponse
	}
	if s.QuoteID == "" {
		s.QuoteID = quoteID
	}
	return s, nil
}

func (g *ShipmentGateway) UpdateStatus(ctx context.Context, token, id string, status entities.ShipmentStatus, comment string) error {
	body := map[string]any{"status": string(status)}
	if c := strings.TrimSpace(comment); c != "" {
		body["comment"] = c
	}
	base := "/api/shipments/" + url.PathEscape(id)
	_, err := g.client.RequestWithFallback(ctx, adminFirst(base+"/status", base), Options{
		Method: http.MethodPatch,
		Token:  token,
		Body:   body,
	})
	return err
}

func (g *ShipmentGateway) Delete(ctx context.Context, token, id string) error {
	_, err := g.client.RequestWithFallback(ctx, adminFirst("/api/shipments/"+url.PathEscape(id)), Options{Method: http.MethodDelete, Token: token})
	return err
}

// Track is the public lookup; no Authorization header is sent.
func (g *ShipmentGateway) Track(ctx context.Context, code string) (entities.Shipment, error) {
	escaped := url.PathEscape(code)
	data, err := g.client.RequestWithFallback(ctx, []string{
		"/api/shipments/track/" + escaped,
		"/api/shipments/tracking/" + escaped,
	}, Options{})
	if err != nil {
		return entities.Shipment{}, err
	}
	m := unwrap(data, "shipment")
	if m == nil {
		return entities.Shipment{}, ErrInvalidResponse
	}
	s := normalizeShipment(m)
	if s.TrackingCode == "" {
		s.TrackingCode = code
	}
	return s, nil
}
