package entities

import "time"

// PackageType is an admin-defined template usable in place of raw dimensions.
type PackageType struct {
	ID                    string
	Name                  string
	Description           string
	FlatPrice             float64
	AllowedTransportTypes []TransportType
	CreatedAt             time.Time
}

// Allows reports whether the package type may be used with the transport.
// An empty allow-list accepts every transport.
func (p PackageType) Allows(t TransportType) bool {
	if len(p.AllowedTransportTypes) == 0 {
		return true
	}
	for _, a := range p.AllowedTransportTypes {
		if a == t {
			return true
		}
	}
	return false
}

type PricingMode string

const (
	PricingFlat      PricingMode = "flat"
	PricingDimension PricingMode = "dimension"
	PricingPackage   PricingMode = "package"
	PricingContainer PricingMode = "container"
)

type DimensionRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Price float64 `json:"price"`
}

// TransportPricing is the tariff of one transport type on a route.
type TransportPricing struct {
	Mode            PricingMode        `json:"mode"`
	UnitRate        float64            `json:"unitRate,omitempty"`
	DimensionRanges []DimensionRange   `json:"dimensionRanges,omitempty"`
	PackagePrices   map[string]float64 `json:"packagePrices,omitempty"`
	ContainerRates  map[string]float64 `json:"containerRates,omitempty"`
}

// Pricing is an admin-defined route tariff.
type Pricing struct {
	ID                   string
	Origin               string
	Destination          string
	OriginAddressID      string
	DestinationAddressID string
	Currency             string
	Rates                map[TransportType]TransportPricing
	CreatedAt            time.Time
}

// Transports lists the transport types priced on the route.
func (p Pricing) Transports() []TransportType {
	var out []TransportType
	for _, t := range TransportTypes {
		if _, ok := p.Rates[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

type MarketPointKind string

const (
	MarketPointAgency MarketPointKind = "agency"
	MarketPointHub    MarketPointKind = "hub"
	MarketPointRelay  MarketPointKind = "relay"
)

// MarketPoint is a physical presence point (agency, hub or relay) in a country.
type MarketPoint struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Kind    MarketPointKind `json:"kind"`
	Country string          `json:"country"`
	City    string          `json:"city,omitempty"`
}

// QuoteMetadata is the route metadata the wizard's itinerary step offers.
type QuoteMetadata struct {
	Origins        []string        `json:"origins"`
	Destinations   []string        `json:"destinations"`
	TransportTypes []TransportType `json:"transportTypes"`
	MarketPoints   []MarketPoint   `json:"marketPoints,omitempty"`
	Schedules      []Schedule      `json:"schedules,omitempty"`
}

// Schedule is a published departure on a route.
type Schedule struct {
	ID            string        `json:"id"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	TransportType TransportType `json:"transportType,omitempty"`
	Carrier       string        `json:"carrier,omitempty"`
	Departure     *time.Time    `json:"departure,omitempty"`
	Arrival       *time.Time    `json:"arrival,omitempty"`
}

type User struct {
	ID      string
	Email   string
	Name    string
	Role    string
	IsAdmin bool
}
