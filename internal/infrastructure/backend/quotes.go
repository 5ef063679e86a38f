package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

type QuoteGateway struct {
	client *Client
}

var _ interfaces.IQuoteGateway = (*QuoteGateway)(nil)

func NewQuoteGateway(client *Client) *QuoteGateway {
	return &QuoteGateway{client: client}
}

func (g *QuoteGateway) List(ctx context.Context, token string) ([]entities.Quote, error) {
	data, err := g.client.RequestWithFallback(ctx, adminFirst("/api/quotes"), Options{Token: token})
	if err != nil {
		return nil, err
	}
	items := listOf(data, "quotes")
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, normalizeQuote(it))
	}
	return out, nil
}

func (g *QuoteGateway) Get(ctx context.Context, token, id string) (entities.Quote, error) {
	data, err := g.client.Request(ctx, "/api/quotes/"+url.PathEscape(id), Options{Token: token})
	if err != nil {
		return entities.Quote{}, err
	}
	m := unwrap(data, "quote")
	if m == nil {
		return entities.Quote{}, ErrInvalidResponse
	}
	return normalizeQuote(m), nil
}

func (g *QuoteGateway) Estimate(ctx context.Context, token string, payload map[string]any) ([]entities.Estimate, error) {
	data, err := g.client.RequestWithFallback(ctx, []string{
		"/api/quotes/estimate",
		"/api/quotes/estimates",
		"/api/pricing/estimate",
	}, Options{Method: http.MethodPost, Token: token, Body: payload})
	if err != nil {
		return nil, err
	}
	return normalizeEstimates(data), nil
}

func (g *QuoteGateway) Create(ctx context.Context, token string, payload map[string]any) (entities.Quote, error) {
	data, err := g.client.Request(ctx, "/api/quotes", Options{Method: http.MethodPost, Token: token, Body: payload})
	if err != nil {
		return entities.Quote{}, err
	}
	q := normalizeQuote(unwrap(data, "quote"))
	if q.ID == "" {
		return entities.Quote{}, ErrInvalidResponse
	}
	return q, nil
}

func (g *QuoteGateway) Delete(ctx context.Context, token, id string) error {
	_, err := g.client.Request(ctx, "/api/quotes/"+url.PathEscape(id), Options{Method: http.MethodDelete, Token: token})
	return err
}

func (g *QuoteGateway) UpdateStatus(ctx context.Context, token, id string, status entities.QuoteStatus) error {
	base := "/api/quotes/" + url.PathEscape(id)
	_, err := g.client.RequestWithFallback(ctx, adminFirst(base+"/status", base), Options{
		Method: http.MethodPatch,
		Token:  token,
		Body:   map[string]any{"status": string(status)},
	})
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}

func (g *QuoteGateway) Metadata(ctx context.Context, token string) (entities.QuoteMetadata, error) {
	data, err := g.client.RequestWithFallback(ctx, []string{
		"/api/quotes/meta",
		"/api/quotes/metadata",
	}, Options{Token: token})
	if err != nil {
		return entities.QuoteMetadata{}, err
	}
	m := unwrap(data, "meta", "metadata")
	if m == nil {
		return entities.QuoteMetadata{}, ErrInvalidResponse
	}
	return normalizeMetadata(m), nil
}
