//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/mary-storefront/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name string
		cfg  RouterConfig
	}{
		{name: "default config", cfg: DefaultRouterConfig()},
		{name: "without rate limit or idempotency", cfg: RouterConfig{}},
		{name: "with swagger auth", cfg: RouterConfig{SwaggerUser: "admin", SwaggerPass: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _, _ := newTestHandler(t, nil)
			router, stop := NewRouter(handler, NewHealthHandler(), tt.cfg)
			require.NotNil(t, router)
			stop()
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"liveness", http.MethodGet, "/healthz", http.StatusOK},
		{"readiness", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"catalog", http.MethodGet, "/api/catalog", http.StatusOK},
		{"cart", http.MethodGet, "/api/cart", http.StatusOK},
		{"session", http.MethodPost, "/api/session", http.StatusCreated},
		{"unknown route", http.MethodGet, "/api/orders", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(tt.method, tt.path, "", "")
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	handler, _, _, _ := newTestHandler(t, nil)
	router, stop := NewRouter(handler, nil, RouterConfig{SwaggerUser: "admin", SwaggerPass: "secret"})
	t.Cleanup(stop)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_GlobalMiddleware(t *testing.T) {
	srv := setupServer(t)

	w := srv.doWithHeaders(http.MethodGet, "/api/catalog", "", "", map[string]string{
		"Origin":          middleware.DefaultCORSOrigins[0],
		"Accept-Encoding": "gzip",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, middleware.DefaultCORSOrigins[0], w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestRouter_SessionRateLimit(t *testing.T) {
	handler, _, _, sessions := newTestHandler(t, nil)
	router, stop := NewRouter(handler, nil, RouterConfig{RateLimit: 2, RateWindow: time.Minute})
	t.Cleanup(stop)
	srv := &testServer{router: router, sessions: sessions}
	token, _ := srv.newSession(t)

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, srv.do(http.MethodGet, "/api/cart", token, "").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
