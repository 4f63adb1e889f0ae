//go:build !integration

package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/middleware"
	"github.com/guttosm/mary-storefront/internal/mocks"
	"github.com/guttosm/mary-storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const addTrio = `{"productId":"ovo-trio","flavorIds":["pistache","ninho","maracuja"]}`

func TestGetCart_IssuesSession(t *testing.T) {
	srv := setupServer(t)

	w := srv.do(http.MethodGet, "/api/cart", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	token := w.Header().Get(middleware.CartSessionHeader)
	require.NotEmpty(t, token)
	assert.Equal(t, "true", w.Header().Get(middleware.CartSessionIssuedHeader))

	view := decodeData[dto.CartView](t, w)
	assert.True(t, view.Empty)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0 itens", view.CountLabel)
	assert.Equal(t, "0.00", view.Total)

	// The issued token names the same cart on the next request.
	w = srv.do(http.MethodGet, "/api/cart", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(middleware.CartSessionIssuedHeader))
}

func TestGetCart_ReplacesInvalidSession(t *testing.T) {
	srv := setupServer(t)

	w := srv.do(http.MethodGet, "/api/cart", "not-a-token", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, "not-a-token", w.Header().Get(middleware.CartSessionHeader))
	assert.Equal(t, "true", w.Header().Get(middleware.CartSessionIssuedHeader))
}

func TestAddItem(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "single flavor product with defaults",
			body:           `{"productId":"ovo-colher"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "complete multi-flavor selection",
			body:           addTrio,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "incomplete multi-flavor selection",
			body:           `{"productId":"ovo-trio","flavorIds":["ninho"]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodeUnprocessable,
		},
		{
			name:           "unknown product",
			body:           `{"productId":"nope"}`,
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
		},
		{
			name:           "missing product id",
			body:           `{"quantity":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:           "blank product id",
			body:           `{"productId":"  "}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:           "too many flavor ids",
			body:           `{"productId":"ovo-trio","flavorIds":["a","b","c","d","e","f","g","h","i","j","k","l","m","n","o","p","q","r","s","t","u"]}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _ := srv.newSession(t)
			w := srv.do(http.MethodPost, "/api/cart/items", token, tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusCreated {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
				return
			}
			view := decodeData[dto.AddItemView](t, w)
			assert.Equal(t, 1, view.ItemID)
			assert.Len(t, view.Cart.Items, 1)
			assert.Equal(t, "1 item", view.Cart.CountLabel)
		})
	}
}

func TestAddItem_MergesSameConfiguration(t *testing.T) {
	srv := setupServer(t)
	token, _ := srv.newSession(t)

	w := srv.do(http.MethodPost, "/api/cart/items", token, addTrio)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same flavors in another order land on the same row.
	w = srv.do(http.MethodPost, "/api/cart/items", token,
		`{"productId":"ovo-trio","flavorIds":["ninho","maracuja","pistache"],"quantity":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	view := decodeData[dto.AddItemView](t, w)
	assert.Equal(t, 1, view.ItemID)
	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, 3, view.Cart.Items[0].Quantity)
	assert.Equal(t, []string{"Pistache", "Ninho com Nutella", "Maracujá"}, view.Cart.Items[0].FlavorLabels)
	assert.Equal(t, "269.70", view.Cart.Total)
	assert.Equal(t, "3 itens", view.Cart.CountLabel)

	w = srv.do(http.MethodPost, "/api/cart/items", token, `{"productId":"ovo-colher","weightId":"500g"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	view = decodeData[dto.AddItemView](t, w)
	assert.Equal(t, 2, view.ItemID)
	assert.Len(t, view.Cart.Items, 2)
	assert.Equal(t, "359.60", view.Cart.Total)
}

func TestCartLineOperations(t *testing.T) {
	srv := setupServer(t)
	token, _ := srv.newSession(t)

	w := srv.do(http.MethodPost, "/api/cart/items", token, addTrio)
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		expectedQuantity int
		expectedItems    int
	}{
		{"increment", http.MethodPost, "/api/cart/items/1/increment", "", http.StatusOK, 2, 1},
		{"set quantity", http.MethodPatch, "/api/cart/items/1", `{"quantity":5}`, http.StatusOK, 5, 1},
		{"set quantity below one", http.MethodPatch, "/api/cart/items/1", `{"quantity":0}`, http.StatusBadRequest, 0, 0},
		{"decrement", http.MethodPost, "/api/cart/items/1/decrement", "", http.StatusOK, 4, 1},
		{"unknown line", http.MethodPost, "/api/cart/items/99/increment", "", http.StatusNotFound, 0, 0},
		{"non numeric id", http.MethodDelete, "/api/cart/items/abc", "", http.StatusNotFound, 0, 0},
		{"remove", http.MethodDelete, "/api/cart/items/1", "", http.StatusOK, 0, 0},
		{"remove again", http.MethodDelete, "/api/cart/items/1", "", http.StatusNotFound, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(tt.method, tt.path, token, tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			view := decodeData[dto.CartView](t, w)
			require.Len(t, view.Items, tt.expectedItems)
			if tt.expectedItems > 0 {
				assert.Equal(t, tt.expectedQuantity, view.Items[0].Quantity)
			}
		})
	}
}

func TestDecrementItem_RemovesLastUnit(t *testing.T) {
	srv := setupServer(t)
	token, _ := srv.newSession(t)

	require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/api/cart/items", token, `{"productId":"ovo-colher"}`).Code)

	w := srv.do(http.MethodPost, "/api/cart/items/1/decrement", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeData[dto.CartView](t, w)
	assert.True(t, view.Empty)
}

func TestClearCart(t *testing.T) {
	srv := setupServer(t)
	token, _ := srv.newSession(t)

	require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/api/cart/items", token, addTrio).Code)

	w := srv.do(http.MethodDelete, "/api/cart", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeData[dto.CartView](t, w)
	assert.True(t, view.Empty)
	assert.Equal(t, uint64(2), view.Version)

	// Ids keep counting after a clear.
	w = srv.do(http.MethodPost, "/api/cart/items", token, addTrio)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, decodeData[dto.AddItemView](t, w).ItemID)
}

func TestCarts_AreIsolatedPerSession(t *testing.T) {
	srv := setupServer(t)
	first, _ := srv.newSession(t)
	second, _ := srv.newSession(t)

	require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/api/cart/items", first, addTrio).Code)

	w := srv.do(http.MethodGet, "/api/cart", second, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeData[dto.CartView](t, w).Empty)
}

func TestCheckout(t *testing.T) {
	srv := setupServer(t)
	token, _ := srv.newSession(t)

	t.Run("empty cart", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/api/cart/checkout", token, "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeConflict, decodeError(t, w).Error)
	})

	t.Run("builds the handoff and keeps the cart", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/api/cart/items", token, addTrio).Code)

		w := srv.do(http.MethodPost, "/api/cart/checkout", token, "")
		require.Equal(t, http.StatusOK, w.Code)

		view := decodeData[dto.CheckoutView](t, w)
		assert.Contains(t, view.Message, "*1. Ovo Trio*")
		assert.Contains(t, view.Message, "Sabores: Pistache, Ninho com Nutella, Maracujá")
		require.True(t, strings.HasPrefix(view.URL, "https://wa.me/"+testWhatsAppNumber+"?text="))
		assert.NotContains(t, view.URL, "+")

		parsed, err := url.Parse(view.URL)
		require.NoError(t, err)
		assert.Equal(t, view.Message, parsed.Query().Get("text"))

		w = srv.do(http.MethodGet, "/api/cart", token, "")
		assert.Len(t, decodeData[dto.CartView](t, w).Items, 1)
	})
}

func TestCheckout_RecordsHandoff(t *testing.T) {
	handoffs := new(mocks.MockHandoffRepositoryInterface)
	handler, _, _, sessions := newTestHandler(t, handoffs)

	router := gin.New()
	router.Use(middleware.RequestID())
	NewCartRoutes(handler, nil).RegisterRoutes(router.Group("/api"), nil)
	srv := &testServer{router: router, sessions: sessions}
	token, sessionID := srv.newSession(t)

	handoffs.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.HandoffDocument) bool {
		return doc.SessionID == sessionID && doc.Total == "89.90" && doc.RequestID != ""
	})).Return(errors.New("mongo down")).Once()

	require.Equal(t, http.StatusCreated, srv.do(http.MethodPost, "/api/cart/items", token, addTrio).Code)

	// A failed recording does not fail the handoff.
	w := srv.do(http.MethodPost, "/api/cart/checkout", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	handoffs.AssertExpectations(t)
}

func TestIssueSession(t *testing.T) {
	srv := setupServer(t)

	w := srv.do(http.MethodPost, "/api/session", "", "")
	require.Equal(t, http.StatusCreated, w.Code)

	view := decodeData[dto.SessionView](t, w)
	require.NotEmpty(t, view.Token)
	assert.Equal(t, view.Token, w.Header().Get(middleware.CartSessionHeader))
	assert.False(t, view.ExpiresAt.IsZero())

	session, err := srv.sessions.Validate(view.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
}

func TestAddItem_Idempotent(t *testing.T) {
	srv := setupServer(t)
	token, _ := srv.newSession(t)

	headers := map[string]string{middleware.IdempotencyKeyHeader: "add-1"}

	first := srv.doWithHeaders(http.MethodPost, "/api/cart/items", token, addTrio, headers)
	require.Equal(t, http.StatusCreated, first.Code)
	second := srv.doWithHeaders(http.MethodPost, "/api/cart/items", token, addTrio, headers)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, 1, decodeData[dto.AddItemView](t, second).Cart.TotalQuantity)

	snap := srv.carts.View(mustSessionID(t, srv, token))
	assert.Equal(t, 1, snap.TotalQuantity)
}

func mustSessionID(t *testing.T, srv *testServer, token string) string {
	t.Helper()
	session, err := srv.sessions.Validate(token)
	require.NoError(t, err)
	return session.ID
}
