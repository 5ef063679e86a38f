package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight_portal/internal/adapter/http/middleware"
	"freight_portal/internal/infrastructure/identity"

	"github.com/gin-gonic/gin"
)

type stubAuth identity.Session

func (s stubAuth) Authenticate(*http.Request) identity.Session { return identity.Session(s) }

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

var userSession = identity.Session{Token: "tok", UserID: "user_1"}

func newRouter(s identity.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Authenticate(stubAuth(s)))
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
