package handlers

import (
	"context"
	"net/http"
	"testing"

	"freight_portal/internal/adapter/http/handlers/mocks"
	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	dashboard *mocks.MockIDashboardUseCase
	quotes    *mocks.MockIAdminQuoteUseCase
	shipments *mocks.MockIAdminShipmentUseCase
}

func newAdminRouter(t *testing.T) (adminMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := adminMocks{
		dashboard: mocks.NewMockIDashboardUseCase(ctrl),
		quotes:    mocks.NewMockIAdminQuoteUseCase(ctrl),
		shipments: mocks.NewMockIAdminShipmentUseCase(ctrl),
	}
	h := NewAdminHandler(m.dashboard, m.quotes, m.shipments)

	r := newRouter(userSession)
	r.GET("/v1/admin/dashboard", h.Dashboard)
	r.GET("/v1/admin/quotes", h.ListQuotes)
	r.PATCH("/v1/admin/quotes/:id/:action", h.QuoteAction)
	r.POST("/v1/admin/quotes/:id/shipment", h.CreateShipment)
	r.GET("/v1/admin/shipments", h.ListShipments)
	r.PATCH("/v1/admin/shipments/:id/status", h.UpdateShipmentStatus)
	r.DELETE("/v1/admin/shipments/:id", h.DeleteShipment)
	return m, r
}

func TestAdminHandler_Dashboard(t *testing.T) {
	m, r := newAdminRouter(t)
	m.dashboard.EXPECT().Load(gomock.Any(), "tok").Return(usecase.Dashboard{
		Me:         entities.User{ID: "u1", IsAdmin: true},
		QuoteCount: 3,
	}, nil)

	w := serve(r, http.MethodGet, "/v1/admin/dashboard", "")
	if w.Code != http.StatusOK || decode(t, w)["quoteCount"] != float64(3) {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminHandler_ListQuotes(t *testing.T) {
	t.Run("query is parsed", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.quotes.EXPECT().List(gomock.Any(), "tok", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, q usecase.ListQuery) (usecase.Page[entities.Quote], error) {
			if q.Page != 2 || q.Transport != "sea" || q.Sort != "estimatedPrice" || q.Order != "asc" || q.From == nil {
				t.Errorf("unexpected query: %+v", q)
			}
			return usecase.Page[entities.Quote]{Items: []entities.Quote{{ID: "q-1", Status: entities.QuoteStatusPending}}, Page: 2, PageSize: 10, Total: 11, TotalPages: 2}, nil
		})

		w := serve(r, http.MethodGet, "/v1/admin/quotes?page=2&transport=sea&sort=estimatedPrice&order=asc&from=2025-01-01", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		items, _ := body["items"].([]any)
		if len(items) != 1 || body["totalPages"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid transport", func(t *testing.T) {
		_, r := newAdminRouter(t)
		w := serve(r, http.MethodGet, "/v1/admin/quotes?transport=rail", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, r := newAdminRouter(t)
		if w := serve(r, http.MethodGet, "/v1/admin/quotes?from=14/03/2025", ""); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestAdminHandler_QuoteAction(t *testing.T) {
	t.Run("transition refused", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.quotes.EXPECT().ApplyAction(gomock.Any(), "tok", "q-1", entities.QuoteActionConfirm, gomock.Any()).Return(usecase.Page[entities.Quote]{}, usecase.ErrTransitionNotAllowed)

		if w := serve(r, http.MethodPatch, "/v1/admin/quotes/q-1/confirm", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.quotes.EXPECT().ApplyAction(gomock.Any(), "tok", "q-1", entities.QuoteAction("explode"), gomock.Any()).Return(usecase.Page[entities.Quote]{}, usecase.ErrUnknownQuoteAction)

		if w := serve(r, http.MethodPatch, "/v1/admin/quotes/q-1/explode", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reloaded table", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.quotes.EXPECT().ApplyAction(gomock.Any(), "tok", "q-1", entities.QuoteActionMarkPaid, gomock.Any()).Return(usecase.Page[entities.Quote]{Page: 1, PageSize: 10, TotalPages: 1}, nil)

		if w := serve(r, http.MethodPatch, "/v1/admin/quotes/q-1/mark-paid", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_CreateShipment(t *testing.T) {
	t.Run("not allowed", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.quotes.EXPECT().CreateShipment(gomock.Any(), "tok", "q-1").Return(entities.Shipment{}, usecase.ErrShipmentNotAllowed)
		if w := serve(r, http.MethodPost, "/v1/admin/quotes/q-1/shipment", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.quotes.EXPECT().CreateShipment(gomock.Any(), "tok", "q-1").Return(entities.Shipment{ID: "s-1", QuoteID: "q-1"}, nil)
		w := serve(r, http.MethodPost, "/v1/admin/quotes/q-1/shipment", "")
		if w.Code != http.StatusCreated || decode(t, w)["id"] != "s-1" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAdminHandler_Shipments(t *testing.T) {
	t.Run("status required", func(t *testing.T) {
		_, r := newAdminRouter(t)
		w := serve(r, http.MethodPatch, "/v1/admin/shipments/s-1/status", `{"comment":"x"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("status updated", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.shipments.EXPECT().UpdateStatus(gomock.Any(), "tok", "s-1", entities.ShipmentInTransit, "left port", gomock.Any()).Return(usecase.Page[entities.Shipment]{Page: 1, PageSize: 8, TotalPages: 1}, nil)

		w := serve(r, http.MethodPatch, "/v1/admin/shipments/s-1/status", `{"status":"En transit","comment":"left port"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.shipments.EXPECT().UpdateStatus(gomock.Any(), "tok", "s-1", entities.ShipmentStatus("Perdu"), "", gomock.Any()).Return(usecase.Page[entities.Shipment]{}, usecase.ErrInvalidShipmentStatus)

		if w := serve(r, http.MethodPatch, "/v1/admin/shipments/s-1/status", `{"status":"Perdu"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		m, r := newAdminRouter(t)
		m.shipments.EXPECT().Delete(gomock.Any(), "tok", "s-1").Return(nil)
		if w := serve(r, http.MethodDelete, "/v1/admin/shipments/s-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
