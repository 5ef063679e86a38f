package backend

import (
	"context"
	"net/http"
	"net/url"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

type AddressGateway struct {
	client *Client
}

var _ interfaces.IAddressGateway = (*AddressGateway)(nil)

func NewAddressGateway(client *Client) *AddressGateway {
	return &AddressGateway{client: client}
}

func (g *AddressGateway) List(ctx context.Context, token string) ([]entities.Address, error) {
	data, err := g.client.Request(ctx, "/api/addresses", Options{Token: token})
	if err != nil {
		return nil, err
	}
	items := listOf(data, "addresses")
	out := make([]entities.Address, 0, len(items))
	for _, it := range items {
		out = append(out, normalizeAddress(it))
	}
	return out, nil
}

func (g *AddressGateway) Create(ctx context.Context, token string, payload map[string]any) (entities.Address, error) {
	data, err := g.client.Request(ctx, "/api/addresses", Options{Method: http.MethodPost, Token: token, Body: payload})
	if err != nil {
		return entities.Address{}, err
	}
	return addressFrom(data)
}

func (g *AddressGateway) Update(ctx context.Context, token, id string, payload map[string]any) (entities.Address, error) {
	data, err := g.client.Request(ctx, "/api/addresses/"+url.PathEscape(id), Options{Method: http.MethodPut, Token: token, Body: payload})
	if err != nil {
		return entities.Address{}, err
	}
	a, err := addressFrom(data)
	if err != nil {
		return entities.Address{}, err
	}
	if a.ID == "" {
		a.ID = id
	}
	return a, nil
}

func (g *AddressGateway) Delete(ctx context.Context, token, id string) error {
	_, err := g.client.Request(ctx, "/api/addresses/"+url.PathEscape(id), Options{Method: http.MethodDelete, Token: token})
	return err
}

func addressFrom(data any) (entities.Address, error) {
	m := unwrap(data, "address")
	if m == nil {
		return entities.Address{}, ErrInvalidResponse
	}
	return normalizeAddress(m), nil
}
