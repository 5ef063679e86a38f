package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight_portal/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func testKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func fakeClerk(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Authorization") != "Bearer sk_test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/v1/sessions/sess_1/tokens/backend":
			_, _ = w.Write([]byte(`{"object":"token","jwt":"backend-jwt"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[{"code":"resource_not_found"}]}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClerkClient_Verify(t *testing.T) {
	key, pub := testKey(t)
	c, err := NewClerkClient(config.IdentityConfig{JWTPublicKey: pub}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := c.Verify(sign(t, key, jwt.MapClaims{"sid": "sess_1", "sub": "user_1", "exp": time.Now().Add(time.Minute).Unix()}))
	if err != nil || claims.SessionID != "sess_1" || claims.Subject != "user_1" {
		t.Fatalf("unexpected claims: %+v %v", claims, err)
	}

	_, err = c.Verify(sign(t, key, jwt.MapClaims{"sid": "sess_1", "exp": time.Now().Add(-time.Minute).Unix()}))
	if !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}

	_, err = c.Verify(sign(t, key, jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()}))
	if !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected missing sid rejected, got %v", err)
	}

	other, _ := testKey(t)
	_, err = c.Verify(sign(t, other, jwt.MapClaims{"sid": "s", "exp": time.Now().Add(time.Minute).Unix()}))
	if !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected foreign signature rejected, got %v", err)
	}

	noKey, _ := NewClerkClient(config.IdentityConfig{}, nil)
	if _, err := noKey.Verify("x"); !errors.Is(err, ErrNoVerificationKey) {
		t.Fatalf("expected ErrNoVerificationKey, got %v", err)
	}
}

func TestAuthenticator_Authenticate(t *testing.T) {
	key, pub := testKey(t)
	srv := fakeClerk(t)
	cfg := config.IdentityConfig{APIURL: srv.URL, SecretKey: "sk_test", JWTPublicKey: pub}
	clerk, err := NewClerkClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session := sign(t, key, jwt.MapClaims{"sid": "sess_1", "sub": "user_1", "exp": time.Now().Add(time.Minute).Unix()})

	t.Run("cookie session resolves the backend template", func(t *testing.T) {
		a := NewAuthenticator(NewResolver(cfg), clerk)
		req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session})
		s := a.Authenticate(req)
		if s.Token != "backend-jwt" || s.UserID != "user_1" || s.Sandbox {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("no credentials", func(t *testing.T) {
		a := NewAuthenticator(NewResolver(cfg), clerk)
		if s := a.Authenticate(httptest.NewRequest(http.MethodGet, "/", nil)); s.Authenticated() {
			t.Fatalf("expected anonymous session, got %+v", s)
		}
	})

	t.Run("sandbox unless disabled", func(t *testing.T) {
		sandboxCfg := cfg
		sandboxCfg.DevAdminEnabled = true
		a := NewAuthenticator(NewResolver(sandboxCfg), clerk)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		s := a.Authenticate(req)
		if !s.Sandbox || s.Token != config.DefaultDevAdminToken {
			t.Fatalf("expected sandbox session, got %+v", s)
		}

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+session)
		req.AddCookie(&http.Cookie{Name: SandboxDisabledCookie, Value: "1"})
		s = a.Authenticate(req)
		if s.Sandbox || s.Token != "backend-jwt" {
			t.Fatalf("expected real session, got %+v", s)
		}
	})
}
