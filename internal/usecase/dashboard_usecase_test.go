package usecase

import (
	"context"
	"errors"
	"testing"

	"freight_portal/internal/domain/entities"
	mock_interfaces "freight_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	quotes    *mock_interfaces.MockIQuoteGateway
	shipments *mock_interfaces.MockIShipmentGateway
	catalog   *mock_interfaces.MockICatalogGateway
	users     *mock_interfaces.MockIUserGateway
}

func newDashboard(t *testing.T) (*DashboardUseCase, dashboardMocks) {
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		quotes:    mock_interfaces.NewMockIQuoteGateway(ctrl),
		shipments: mock_interfaces.NewMockIShipmentGateway(ctrl),
		catalog:   mock_interfaces.NewMockICatalogGateway(ctrl),
		users:     mock_interfaces.NewMockIUserGateway(ctrl),
	}
	return NewDashboardUseCase(m.quotes, m.shipments, m.catalog, m.users), m
}

func TestDashboardUseCase_Load(t *testing.T) {
	t.Run("aggregates", func(t *testing.T) {
		uc, m := newDashboard(t)
		m.quotes.EXPECT().List(gomock.Any(), "tok").Return(sampleQuotes(), nil)
		m.shipments.EXPECT().List(gomock.Any(), "tok").Return([]entities.Shipment{
			{ID: "s-1", Status: "en transit"},
			{ID: "s-2", Status: entities.ShipmentInTransit},
			{ID: "s-3", Status: "Inconnu"},
		}, nil)
		m.catalog.EXPECT().ListPricing(gomock.Any(), "tok").Return([]entities.Pricing{{ID: "p-1"}}, nil)
		m.users.EXPECT().Me(gomock.Any(), "tok").Return(entities.User{ID: "u-1", IsAdmin: true}, nil)

		d, err := uc.Load(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.QuoteCount != 3 || d.QuotesByStatus[entities.QuoteStatusPending] != 2 {
			t.Fatalf("unexpected quote counts: %+v", d)
		}
		if d.ShipmentsByStage[entities.ShipmentInTransit] != 2 || d.ShipmentsByStage["Inconnu"] != 1 {
			t.Fatalf("unexpected stage counts: %+v", d.ShipmentsByStage)
		}
		if d.PricingCount != 1 || d.Me.ID != "u-1" || d.RecentQuotes[0].ID != "q-3" {
			t.Fatalf("unexpected dashboard: %+v", d)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		uc, m := newDashboard(t)
		boom := errors.New("unable to reach server")
		m.quotes.EXPECT().List(gomock.Any(), "tok").Return(nil, boom)
		m.shipments.EXPECT().List(gomock.Any(), "tok").Return(nil, nil).AnyTimes()
		m.catalog.EXPECT().ListPricing(gomock.Any(), "tok").Return(nil, nil).AnyTimes()
		m.users.EXPECT().Me(gomock.Any(), "tok").Return(entities.User{}, nil).AnyTimes()

		if _, err := uc.Load(context.Background(), "tok"); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
