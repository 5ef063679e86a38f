package usecase

import (
	"context"
	"log"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

const recentQuotesLimit = 5

// Dashboard is the admin landing summary.
type Dashboard struct {
	Me               entities.User
	QuoteCount       int
	QuotesByStatus   map[entities.QuoteStatus]int
	ShipmentCount    int
	ShipmentsByStage map[entities.ShipmentStatus]int
	PricingCount     int
	RecentQuotes     []entities.Quote
}

type IDashboardUseCase interface {
	Load(ctx context.Context, token string) (Dashboard, error)
}

type DashboardUseCase struct {
	quotes    interfaces.IQuoteGateway
	shipments interfaces.IShipmentGateway
	catalog   interfaces.ICatalogGateway
	users     interfaces.IUserGateway
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(quotes interfaces.IQuoteGateway, shipments interfaces.IShipmentGateway, catalog interfaces.ICatalogGateway, users interfaces.IUserGateway) *DashboardUseCase {
	return &DashboardUseCase{quotes: quotes, shipments: shipments, catalog: catalog, users: users}
}

// Load runs the four backend reads concurrently. The first failure cancels
// the others and is returned.
func (u *DashboardUseCase) Load(ctx context.Context, token string) (Dashboard, error) {
	var (
		quotes    []entities.Quote
		shipments []entities.Shipment
		pricing   []entities.Pricing
		me        entities.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		quotes, err = u.quotes.List(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		shipments, err = u.shipments.List(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		pricing, err = u.catalog.ListPricing(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		me, err = u.users.Me(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[dashboard][usecase] load failed err=%v", err)
		return Dashboard{}, err
	}

	d := Dashboard{
		Me:               me,
		QuoteCount:       len(quotes),
		QuotesByStatus:   map[entities.QuoteStatus]int{},
		ShipmentCount:    len(shipments),
		ShipmentsByStage: map[entities.ShipmentStatus]int{},
		PricingCount:     len(pricing),
	}
	for _, q := range quotes {
		d.QuotesByStatus[q.Status]++
	}
	for _, s := range shipments {
		if i := entities.StageIndex(s.Status); i >= 0 {
			d.ShipmentsByStage[entities.ShipmentStages[i]]++
		} else {
			d.ShipmentsByStage[s.Status]++
		}
	}
	recent := quoteListSpec.apply(quotes, ListQuery{}, recentQuotesLimit)
	d.RecentQuotes = recent.Items
	return d, nil
}
