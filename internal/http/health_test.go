//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readinessBody struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

func probe(t *testing.T, h *HealthHandler, path string) (int, readinessBody) {
	t.Helper()
	router := gin.New()
	h.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body readinessBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("catalog", CheckerFunc(func(context.Context) error { return errors.New("not loaded") }))

	status, body := probe(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*HealthHandler)
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no checkers",
			setup:          func(*HealthHandler) {},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy checkers",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("catalog", CheckerFunc(func(context.Context) error { return nil }))
				h.RegisterChecker("mongodb", CheckerFunc(func(context.Context) error { return nil }))
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"catalog": "ok", "mongodb": "ok"},
		},
		{
			name: "catalog not loaded",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("catalog", CheckerFunc(func(context.Context) error { return errors.New("catalog not loaded") }))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"catalog": "catalog not loaded"},
		},
		{
			name: "hung dependency times out without hiding the others",
			setup: func(h *HealthHandler) {
				h.timeout = 20 * time.Millisecond
				h.RegisterChecker("catalog", CheckerFunc(func(context.Context) error { return nil }))
				h.RegisterChecker("mongodb", CheckerFunc(func(ctx context.Context) error {
					<-ctx.Done()
					return ctx.Err()
				}))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"catalog": "ok", "mongodb": context.DeadlineExceeded.Error()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler()
			tt.setup(h)

			status, body := probe(t, h, "/readyz")
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_RegisterCircuitBreaker(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "cart_state",
	})
	h := NewHealthHandler()
	h.RegisterCircuitBreaker("cart_state", cb)

	status, body := probe(t, h, "/readyz")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body.Checks, "cart_state_circuit")

	_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })

	status, body = probe(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "degraded", body.Status)
}
