package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/i18n"
	"github.com/guttosm/mary-storefront/internal/logger"
	"github.com/guttosm/mary-storefront/internal/service"
)

const (
	// CartSessionHeader carries the anonymous cart session token both ways.
	CartSessionHeader = "X-Cart-Session"
	// CartSessionIssuedHeader is set when the response carries a new session.
	CartSessionIssuedHeader = "X-Cart-Session-Issued"

	// CartSessionKey is the context key for the cart session id.
	CartSessionKey ContextKey = "cart_session_id"
)

// CartSession resolves the shopper's cart session. A missing, expired or tampered
// token is replaced by a fresh session returned in the X-Cart-Session response
// header; the request then proceeds against the new, empty cart.
func CartSession(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(CartSessionHeader)
		log := logger.FromContext(c.Request.Context())

		session, err := sessions.Validate(token)
		if err != nil {
			session, err = sessions.Issue()
			if err != nil {
				log.Error().Err(err).Msg("Could not issue cart session")
				message := i18n.GetTranslator().Translate(i18n.ErrKeySessionUnavailable, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable,
					dto.NewError(dto.ErrCodeUnavailable, message).WithRequestID(GetRequestID(c)))
				return
			}
			c.Header(CartSessionHeader, session.Token)
			c.Header(CartSessionIssuedHeader, "true")
			if token != "" {
				log.Debug().Msg("Replaced invalid cart session")
			}
		}

		c.Set(string(CartSessionKey), session.ID)
		scoped := log.With().Str("session_id", session.ID).Logger()
		c.Request = c.Request.WithContext(scoped.WithContext(c.Request.Context()))
		c.Next()
	}
}

// GetCartSessionID retrieves the cart session id from the gin context.
func GetCartSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(CartSessionKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
