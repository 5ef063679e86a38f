package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"freight_portal/internal/adapter/http/handlers"
	"freight_portal/internal/adapter/http/handlers/mocks"
	"freight_portal/internal/config"
	"freight_portal/internal/domain/entities"
	"freight_portal/internal/infrastructure/identity"
	"freight_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type stubAuth identity.Session

func (s stubAuth) Authenticate(*http.Request) identity.Session { return identity.Session(s) }

func newTestRouter(t *testing.T, s identity.Session) (*gin.Engine, *mocks.MockISessionUseCase, *mocks.MockIMetadataUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionUseCase(ctrl)
	metadata := mocks.NewMockIMetadataUseCase(ctrl)

	h := Handlers{
		Session:  handlers.NewSessionHandler(sessions, func(string) string { return "" }),
		Metadata: handlers.NewMetadataHandler(metadata),
		Wizard:   handlers.NewWizardHandler(mocks.NewMockIQuoteWizardUseCase(ctrl)),
		Address:  handlers.NewAddressHandler(mocks.NewMockIAddressUseCase(ctrl)),
		Tracking: handlers.NewTrackingHandler(mocks.NewMockITrackingUseCase(ctrl)),
		Payment:  handlers.NewPaymentHandler(mocks.NewMockIQuotePaymentUseCase(ctrl), false),
		Admin: handlers.NewAdminHandler(
			mocks.NewMockIDashboardUseCase(ctrl),
			mocks.NewMockIAdminQuoteUseCase(ctrl),
			mocks.NewMockIAdminShipmentUseCase(ctrl),
		),
		Catalog: handlers.NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl)),
	}
	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}}}
	return NewRouter(cfg, stubAuth(s), sessions, h), sessions, metadata
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_Ping(t *testing.T) {
	r, _, _ := newTestRouter(t, identity.Session{})
	w := do(r, http.MethodGet, "/v1/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRouter_PortalRequiresSession(t *testing.T) {
	r, _, _ := newTestRouter(t, identity.Session{})
	for _, path := range []string{"/v1/quotes/meta", "/v1/addresses", "/v1/payments/q-1"} {
		if w := do(r, http.MethodGet, path); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
	if w := do(r, http.MethodPost, "/v1/wizard"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRouter_AdminRequiresAdmin(t *testing.T) {
	member := entities.User{ID: "u2"}
	r, sessions, metadata := newTestRouter(t, identity.Session{Token: "tok", UserID: "u2"})
	sessions.EXPECT().Current(gomock.Any(), "tok", false).Return(usecase.SessionInfo{Authenticated: true, User: &member}, nil).Times(2)

	if w := do(r, http.MethodGet, "/v1/admin/dashboard"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/v1/quotes/meta/invalidate"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	metadata.EXPECT().Invalidate().Times(0)
}

func TestRouter_SandboxAdminInvalidatesMetadata(t *testing.T) {
	r, sessions, metadata := newTestRouter(t, identity.Session{Token: "dev", Sandbox: true})
	admin := usecase.SandboxUser
	sessions.EXPECT().Current(gomock.Any(), "dev", true).Return(usecase.SessionInfo{Authenticated: true, Sandbox: true, User: &admin}, nil)
	metadata.EXPECT().Invalidate()

	if w := do(r, http.MethodPost, "/v1/quotes/meta/invalidate"); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
