//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		method        string
		origin        string
		expectAllowed bool
		expectStatus  int
	}{
		{name: "default origin preflight", method: http.MethodOptions, origin: "http://localhost:3000", expectAllowed: true, expectStatus: http.StatusNoContent},
		{name: "configured origin", origins: []string{"https://maryrestaurante.com.br"}, method: http.MethodGet, origin: "https://maryrestaurante.com.br", expectAllowed: true, expectStatus: http.StatusOK},
		{name: "unknown origin", origins: []string{"https://maryrestaurante.com.br"}, method: http.MethodGet, origin: "https://evil.example", expectStatus: http.StatusForbidden},
		{name: "same origin request", method: http.MethodGet, expectStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/api/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/api/cart", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
				req.Header.Set("Access-Control-Request-Headers", CartSessionHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectStatus, w.Code)
			if tt.expectAllowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			}
			if tt.method == http.MethodOptions {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), CartSessionHeader)
			}
			if tt.expectAllowed && tt.method == http.MethodGet {
				assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), CartSessionHeader)
			}
		})
	}
}
