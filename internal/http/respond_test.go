//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/i18n"
	"github.com/guttosm/mary-storefront/internal/middleware"
	"github.com/guttosm/mary-storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.RequestID()(c)
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
		expectError bool
	}{
		{name: "valid request", body: `{"productId":"ovo-trio","flavorIds":["ninho"],"quantity":2}`},
		{name: "invalid JSON", body: `{"productId":`, expectError: true},
		{name: "empty body", body: ``, expectError: true},
		{name: "missing product id", body: `{"quantity":1}`, expectError: true},
		{name: "negative quantity", body: `{"productId":"ovo-trio","quantity":-1}`, expectedErr: dto.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(tt.body)
			req, err := BuildRequestAndValidate[dto.AddItemRequest](c)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectError:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "ovo-trio", req.ProductID)
				assert.Equal(t, []string{"ninho"}, req.FlavorIDs)
				assert.Equal(t, 2, req.Quantity)
			}
		})
	}
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name           string
		send           func(*ResponseBuilder)
		expectedStatus int
	}{
		{
			name:           "SuccessOK",
			send:           func(b *ResponseBuilder) { b.SuccessOK(dto.CatalogView{DefaultCategory: "pascoa"}) },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "SuccessCreated",
			send:           func(b *ResponseBuilder) { b.SuccessCreated(dto.SessionView{Token: "t"}) },
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext("")
			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			var resp dto.SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.RequestID)
			assert.NotZero(t, resp.Timestamp)
			assert.NotNil(t, resp.Data)
		})
	}
}

func TestResponseBuilder_Cache(t *testing.T) {
	c, w := newTestContext("")
	NewResponseBuilder(c).Cache(cacheCatalog).SuccessOK(dto.CatalogView{DefaultCategory: "pascoa"})
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))

	c, w = newTestContext("")
	NewResponseBuilder(c).Cache(cacheCatalog).Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"), "errors are never cached")
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext("")
	c.Request.Header.Set("Accept-Language", "en-US,en;q=0.9")

	NewResponseBuilder(c).Error(http.StatusConflict, i18n.ErrKeyEmptyCart, service.ErrEmptyCart)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors[0].Err, service.ErrEmptyCart)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeConflict, resp.Error)
	assert.Equal(t, i18n.GetTranslator().Translate(i18n.ErrKeyEmptyCart, "en"), resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	assert.Nil(t, resp.Details)
}

func TestResponseBuilder_ErrorWithDetails(t *testing.T) {
	c, w := newTestContext("")

	NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
		map[string]string{"quantity": "must be a positive integer"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, c.Errors)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"quantity": "must be a positive integer"}, resp.Details)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err            error
		expectedStatus int
		expectedKey    string
	}{
		{service.ErrCatalogUnavailable, http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable},
		{service.ErrCategoryNotFound, http.StatusNotFound, i18n.ErrKeyCategoryNotFound},
		{service.ErrProductNotFound, http.StatusNotFound, i18n.ErrKeyProductNotFound},
		{service.ErrItemNotFound, http.StatusNotFound, i18n.ErrKeyItemNotFound},
		{service.ErrProductUnavailable, http.StatusUnprocessableEntity, i18n.ErrKeyProductUnavailable},
		{service.ErrTooManyFlavors, http.StatusUnprocessableEntity, i18n.ErrKeyTooManyFlavors},
		{service.ErrIncompleteSelection, http.StatusUnprocessableEntity, i18n.ErrKeyIncompleteSelection},
		{service.ErrInvalidQuantity, http.StatusBadRequest, i18n.ErrKeyInvalidQuantity},
		{service.ErrEmptyCart, http.StatusConflict, i18n.ErrKeyEmptyCart},
		{errors.Join(errors.New("context"), service.ErrUnknownWeight), http.StatusUnprocessableEntity, i18n.ErrKeyUnknownWeight},
		{errors.New("boom"), http.StatusInternalServerError, i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, key := errorStatus(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedKey, key)
		})
	}
}
