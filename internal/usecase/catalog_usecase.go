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
	ErrInvalidPricingID     = errors.New("invalid pricing id")
	ErrInvalidPackageTypeID = errors.New("invalid package type id")
)

func transportStrings(ts []entities.TransportType) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

var pricingListSpec = listSpec[entities.Pricing]{
	searchFields: func(p entities.Pricing) []string {
		return []string{p.ID, p.Origin, p.Destination, p.Currency}
	},
	transports: func(p entities.Pricing) []string { return transportStrings(p.Transports()) },
	date:       func(p entities.Pricing) time.Time { return p.CreatedAt },
	sortKeys: map[string]func(a, b entities.Pricing) int{
		"origin":      func(a, b entities.Pricing) int { return compareStrings(a.Origin, b.Origin) },
		"destination": func(a, b entities.Pricing) int { return compareStrings(a.Destination, b.Destination) },
		"createdAt":   func(a, b entities.Pricing) int { return compareTimes(a.CreatedAt, b.CreatedAt) },
	},
	defaultSort: "origin",
}

var packageTypeListSpec = listSpec[entities.PackageType]{
	searchFields: func(p entities.PackageType) []string {
		return []string{p.ID, p.Name, p.Description}
	},
	transports: func(p entities.PackageType) []string {
		if len(p.AllowedTransportTypes) == 0 {
			return transportStrings(entities.TransportTypes)
		}
		return transportStrings(p.AllowedTransportTypes)
	},
	date: func(p entities.PackageType) time.Time { return p.CreatedAt },
	sortKeys: map[string]func(a, b entities.PackageType) int{
		"name":      func(a, b entities.PackageType) int { return compareStrings(a.Name, b.Name) },
		"flatPrice": func(a, b entities.PackageType) int { return compareFloats(a.FlatPrice, b.FlatPrice) },
		"createdAt": func(a, b entities.PackageType) int { return compareTimes(a.CreatedAt, b.CreatedAt) },
	},
	defaultSort: "name",
}

// ICatalogUseCase backs the admin pricing and package type tables.
type ICatalogUseCase interface {
	ListPricing(ctx context.Context, token string, q ListQuery) (Page[entities.Pricing], error)
	SavePricing(ctx context.Context, token string, p entities.Pricing) (entities.Pricing, error)
	DeletePricing(ctx context.Context, token, id string) error
	ListPackageTypes(ctx context.Context, token string, q ListQuery) (Page[entities.PackageType], error)
	SavePackageType(ctx context.Context, token string, p entities.PackageType) (entities.PackageType, error)
	DeletePackageType(ctx context.Context, token, id string) error
}

type CatalogUseCase struct {
	catalog  interfaces.ICatalogGateway
	metadata IMetadataUseCase
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase wires the catalog; metadata may be nil. Any catalog write
// invalidates the cached route metadata.
func NewCatalogUseCase(catalog interfaces.ICatalogGateway, metadata IMetadataUseCase) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, metadata: metadata}
}

func (u *CatalogUseCase) ListPricing(ctx context.Context, token string, q ListQuery) (Page[entities.Pricing], error) {
	all, err := u.catalog.ListPricing(ctx, token)
	if err != nil {
		log.Printf("[catalog][usecase] list pricing failed err=%v", err)
		return Page[entities.Pricing]{}, err
	}
	return pricingListSpec.apply(all, q, PricingPageSize), nil
}

func (u *CatalogUseCase) SavePricing(ctx context.Context, token string, p entities.Pricing) (entities.Pricing, error) {
	if v := validatePricing(p); !v.Empty() {
		return entities.Pricing{}, invalid(v)
	}
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	saved, err := u.catalog.SavePricing(ctx, token, p)
	if err != nil {
		log.Printf("[catalog][usecase] save pricing failed id=%s err=%v", p.ID, err)
		return entities.Pricing{}, err
	}
	u.invalidate()
	log.Printf("[catalog][usecase] pricing saved id=%s route=%s->%s", saved.ID, saved.Origin, saved.Destination)
	return saved, nil
}

func (u *CatalogUseCase) DeletePricing(ctx context.Context, token, id string) error {
	id = trimmed(id)
	if id == "" {
		return ErrInvalidPricingID
	}
	if err := u.catalog.DeletePricing(ctx, token, id); err != nil {
		log.Printf("[catalog][usecase] delete pricing failed id=%s err=%v", id, err)
		return err
	}
	u.invalidate()
	return nil
}

func (u *CatalogUseCase) ListPackageTypes(ctx context.Context, token string, q ListQuery) (Page[entities.PackageType], error) {
	all, err := u.catalog.ListPackageTypes(ctx, token)
	if err != nil {
		log.Printf("[catalog][usecase] list package types failed err=%v", err)
		return Page[entities.PackageType]{}, err
	}
	return packageTypeListSpec.apply(all, q, PackageTypesPageSize), nil
}

func (u *CatalogUseCase) SavePackageType(ctx context.Context, token string, p entities.PackageType) (entities.PackageType, error) {
	v := entities.Violations{}
	if strings.TrimSpace(p.Name) == "" {
		v.Add("name", "required")
	}
	if p.FlatPrice < 0 {
		v.Add("flatPrice", "must_be_positive")
	}
	for _, t := range p.AllowedTransportTypes {
		if !t.IsValid() {
			v.Add("allowedTransportTypes", "invalid_transport")
		}
	}
	if !v.Empty() {
		return entities.PackageType{}, invalid(v)
	}
	saved, err := u.catalog.SavePackageType(ctx, token, p)
	if err != nil {
		log.Printf("[catalog][usecase] save package type failed id=%s err=%v", p.ID, err)
		return entities.PackageType{}, err
	}
	u.invalidate()
	return saved, nil
}

func (u *CatalogUseCase) DeletePackageType(ctx context.Context, token, id string) error {
	id = trimmed(id)
	if id == "" {
		return ErrInvalidPackageTypeID
	}
	if err := u.catalog.DeletePackageType(ctx, token, id); err != nil {
		log.Printf("[catalog][usecase] delete package type failed id=%s err=%v", id, err)
		return err
	}
	u.invalidate()
	return nil
}

func (u *CatalogUseCase) invalidate() {
	if u.metadata != nil {
		u.metadata.Invalidate()
	}
}

func validatePricing(p entities.Pricing) entities.Violations {
	v := entities.Violations{}
	if strings.TrimSpace(p.Origin) == "" {
		v.Add("origin", "required")
	}
	if strings.TrimSpace(p.Destination) == "" {
		v.Add("destination", "required")
	}
	if strings.TrimSpace(p.Currency) == "" {
		v.Add("currency", "required")
	}
	if len(p.Rates) == 0 {
		v.Add("rates", "required")
	}
	for t, r := range p.Rates {
		if !t.IsValid() {
			v.Add("rates", "invalid_transport")
			continue
		}
		switch r.Mode {
		case entities.PricingFlat:
			if r.UnitRate <= 0 {
				v.Add("rates."+string(t)+".unitRate", "must_be_positive")
			}
		case entities.PricingDimension:
			if len(r.DimensionRanges) == 0 {
				v.Add("rates."+string(t)+".dimensionRanges", "required")
			}
		case entities.PricingPackage:
			if len(r.PackagePrices) == 0 {
				v.Add("rates."+string(t)+".packagePrices", "required")
			}
		case entities.PricingContainer:
			if len(r.ContainerRates) == 0 {
				v.Add("rates."+string(t)+".containerRates", "required")
			}
		default:
			v.Add("rates."+string(t)+".mode", "invalid_mode")
		}
	}
	return v
}
