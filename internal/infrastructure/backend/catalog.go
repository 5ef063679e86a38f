package backend

import (
	"context"
	"net/http"
	"net/url"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

// CatalogGateway covers the admin-managed reference data: pricing, package
// types and schedules.
type CatalogGateway struct {
	client *Client
}

var _ interfaces.ICatalogGateway = (*CatalogGateway)(nil)

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) ListPricing(ctx context.Context, token string) ([]entities.Pricing, error) {
	data, err := g.client.RequestWithFallback(ctx, adminFirst("/api/pricing"), Options{Token: token})
	if err != nil {
		return nil, err
	}
	items := listOf(data, "pricing", "prices")
	out := make([]entities.Pricing, 0, len(items))
	for _, it := range items {
		out = append(out, normalizePricing(it))
	}
	return out, nil
}

// SavePricing creates the record when it has no id, updates it otherwise.
func (g *CatalogGateway) SavePricing(ctx context.Context, token string, p entities.Pricing) (entities.Pricing, error) {
	path, method := "/api/pricing", http.MethodPost
	if p.ID != "" {
		path, method = "/api/pricing/"+url.PathEscape(p.ID), http.MethodPut
	}
	data, err := g.client.RequestWithFallback(ctx, adminFirst(path), Options{Method: method, Token: token, Body: pricingPayload(p)})
	if err != nil {
		return entities.Pricing{}, err
	}
	m := unwrap(data, "pricing")
	if m == nil {
		return p, nil
	}
	saved := normalizePricing(m)
	if saved.ID == "" {
		saved.ID = p.ID
	}
	return saved, nil
}

func (g *CatalogGateway) DeletePricing(ctx context.Context, token, id string) error {
	_, err := g.client.RequestWithFallback(ctx, adminFirst("/api/pricing/"+url.PathEscape(id)), Options{Method: http.MethodDelete, Token: token})
	return err
}

var packageTypePaths = []string{"/api/package-types", "/api/pricing/package-types"}

func (g *CatalogGateway) ListPackageTypes(ctx context.Context, token string) ([]entities.PackageType, error) {
	data, err := g.client.RequestWithFallback(ctx, packageTypePaths, Options{Token: token})
	if err != nil {
		return nil, err
	}
	items := listOf(data, "packageTypes")
	out := make([]entities.PackageType, 0, len(items))
	for _, it := range items {
		out = append(out, normalizePackageType(it))
	}
	return out, nil
}

func (g *CatalogGateway) SavePackageType(ctx context.Context, token string, p entities.PackageType) (entities.PackageType, error) {
	method := http.MethodPost
	paths := packageTypePaths
	if p.ID != "" {
		method = http.MethodPut
		paths = []string{
			packageTypePaths[0] + "/" + url.PathEscape(p.ID),
			packageTypePaths[1] + "/" + url.PathEscape(p.ID),
		}
	}
	data, err := g.client.RequestWithFallback(ctx, paths, Options{Method: method, Token: token, Body: packageTypePayload(p)})
	if err != nil {
		return entities.PackageType{}, err
	}
	m := unwrap(data, "packageType")
	if m == nil {
		return p, nil
	}
	saved := normalizePackageType(m)
	if saved.ID == "" {
		saved.ID = p.ID
	}
	return saved, nil
}

func (g *CatalogGateway) DeletePackageType(ctx context.Context, token, id string) error {
	_, err := g.client.RequestWithFallback(ctx, []string{
		packageTypePaths[0] + "/" + url.PathEscape(id),
		packageTypePaths[1] + "/" + url.PathEscape(id),
	}, Options{Method: http.MethodDelete, Token: token})
	return err
}

func (g *CatalogGateway) ListSchedules(ctx context.Context, token string) ([]entities.Schedule, error) {
	data, err := g.client.Request(ctx, "/api/schedules", Options{Token: token})
	if err != nil {
		return nil, err
	}
	items := listOf(data, "schedules")
	out := make([]entities.Schedule, 0, len(items))
	for _, it := range items {
		out = append(out, normalizeSchedule(it))
	}
	return out, nil
}

func pricingPayload(p entities.Pricing) map[string]any {
	rates := make(map[string]any, len(p.Rates))
	for t, r := range p.Rates {
		rates[string(t)] = r
	}
	body := map[string]any{
		"origin":      p.Origin,
		"destination": p.Destination,
		"currency":    p.Currency,
		"rates":       rates,
	}
	if p.OriginAddressID != "" {
		body["originAddressId"] = p.OriginAddressID
	}
	if p.DestinationAddressID != "" {
		body["destinationAddressId"] = p.DestinationAddressID
	}
	return body
}

func packageTypePayload(p entities.PackageType) map[string]any {
	allowed := make([]string, 0, len(p.AllowedTransportTypes))
	for _, t := range p.AllowedTransportTypes {
		allowed = append(allowed, string(t))
	}
	return map[string]any{
		"name":                  p.Name,
		"description":           p.Description,
		"flatPrice":             p.FlatPrice,
		"allowedTransportTypes": allowed,
	}
}
