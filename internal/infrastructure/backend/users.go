package backend

import (
	"context"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

type UserGateway struct {
	client *Client
}

var _ interfaces.IUserGateway = (*UserGateway)(nil)

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

func (g *UserGateway) Me(ctx context.Context, token string) (entities.User, error) {
	data, err := g.client.Request(ctx, "/api/users/me", Options{Token: token})
	if err != nil {
		return entities.User{}, err
	}
	m := unwrap(data, "user")
	if m == nil {
		return entities.User{}, ErrInvalidResponse
	}
	return normalizeUser(m), nil
}
