//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/cart"
	"github.com/guttosm/mary-storefront/internal/catalog"
	"github.com/guttosm/mary-storefront/internal/middleware"
	"github.com/guttosm/mary-storefront/internal/repository"
	"github.com/guttosm/mary-storefront/internal/service"
	"github.com/stretchr/testify/require"
)

const testWhatsAppNumber = "5584991087606"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	catalog  *service.CatalogServiceImpl
	carts    *service.CartServiceImpl
	sessions *service.SessionServiceImpl
}

func newTestCatalog(t *testing.T, load bool) *service.CatalogServiceImpl {
	t.Helper()
	source := catalog.NewSource(catalog.FileLoader{Path: filepath.Join("..", "catalog", "testdata", "feed.json")})
	if load {
		_, err := source.Reload(context.Background())
		require.NoError(t, err)
	}
	return service.NewCatalogService(source)
}

func newTestHandler(t *testing.T, handoffs repository.HandoffRepositoryInterface) (*Handler, *service.CatalogServiceImpl, *service.CartServiceImpl, *service.SessionServiceImpl) {
	t.Helper()
	catalogService := newTestCatalog(t, true)
	carts := service.NewCartService(catalogService, cart.NewMemoryStorage(), service.CartServiceConfig{CacheSize: 64})
	t.Cleanup(carts.Close)
	sessions := service.NewSessionService(config.SessionConfig{Secret: "test-secret"})
	checkout := service.NewCheckoutService(carts, handoffs, testWhatsAppNumber)
	return NewHandler(catalogService, carts, checkout, sessions), catalogService, carts, sessions
}

// setupServer builds the full router without rate limiting.
func setupServer(t *testing.T) *testServer {
	t.Helper()
	handler, catalogService, carts, sessions := newTestHandler(t, nil)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	router, stop := NewRouter(handler, NewHealthHandler(), cfg)
	t.Cleanup(stop)

	return &testServer{router: router, catalog: catalogService, carts: carts, sessions: sessions}
}

// newSession issues a session token for requests that must share a cart.
func (s *testServer) newSession(t *testing.T) (token, id string) {
	t.Helper()
	session, err := s.sessions.Issue()
	require.NoError(t, err)
	return session.Token, session.ID
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	return s.doWithHeaders(method, path, token, body, nil)
}

func (s *testServer) doWithHeaders(method, path, token, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.CartSessionHeader, token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

type errorEnvelope struct {
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details"`
	RequestID string            `json:"request_id"`
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var out errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
