package response

import (
	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase"
)

type DashboardResponse struct {
	Me               UserResponse                    `json:"me"`
	QuoteCount       int                             `json:"quoteCount"`
	QuotesByStatus   map[entities.QuoteStatus]int    `json:"quotesByStatus"`
	ShipmentCount    int                             `json:"shipmentCount"`
	ShipmentsByStage map[entities.ShipmentStatus]int `json:"shipmentsByStage"`
	PricingCount     int                             `json:"pricingCount"`
	RecentQuotes     []QuoteResponse                 `json:"recentQuotes"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	recent := make([]QuoteResponse, 0, len(d.RecentQuotes))
	for _, q := range d.RecentQuotes {
		recent = append(recent, FromQuote(q))
	}
	return DashboardResponse{
		Me:               FromUser(d.Me),
		QuoteCount:       d.QuoteCount,
		QuotesByStatus:   d.QuotesByStatus,
		ShipmentCount:    d.ShipmentCount,
		ShipmentsByStage: d.ShipmentsByStage,
		PricingCount:     d.PricingCount,
		RecentQuotes:     recent,
	}
}
