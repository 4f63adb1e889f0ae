package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/i18n"
	"github.com/guttosm/mary-storefront/internal/middleware"
)

const (
	// cachePrivate is sent with anything tied to a cart session.
	cachePrivate = "no-store"
	// cacheCatalog lets browsers and the CDN reuse catalog reads briefly; the
	// feed reloads in the background so a short max-age is enough.
	cacheCatalog = "public, max-age=60"
)

// ResponseBuilder writes the API envelopes for one request.
type ResponseBuilder struct {
	c     *gin.Context
	cache string
}

// NewResponseBuilder returns a builder whose responses are not cacheable.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c, cache: cachePrivate}
}

// Cache sets the Cache-Control policy for successful responses. Errors are
// always sent no-store.
func (b *ResponseBuilder) Cache(policy string) *ResponseBuilder {
	b.cache = policy
	return b
}

// Success writes data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.Header("Cache-Control", b.cache)
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK is Success with 200.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated is Success with 201.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the translated message for messageKey. A non-nil err is
// attached to the gin context so the error handler logs it.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error with per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}

	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.c.Header("Cache-Control", cachePrivate)
	b.c.AbortWithStatusJSON(statusCode, dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithDetails(details).
		WithRequestID(middleware.GetRequestID(b.c)))
}

// Validator is implemented by request bodies that check themselves after binding.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into a new T and, when T
// implements Validator, validates it.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req := new(T)
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
