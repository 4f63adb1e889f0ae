package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/guttosm/mary-storefront/config"
)

const sessionIssuer = "mary-storefront"

// Session identifies an anonymous shopper's cart. It carries no identity.
type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}

// SessionService issues and checks cart session tokens.
type SessionService interface {
	// Issue creates a new session with a fresh id.
	Issue() (Session, error)
	// Validate checks a token and returns the session it names.
	Validate(token string) (Session, error)
}

// SessionServiceImpl implements SessionService with HMAC-signed JWTs.
type SessionServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a new session service.
func NewSessionService(cfg config.SessionConfig) *SessionServiceImpl {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &SessionServiceImpl{secret: []byte(cfg.Secret), ttl: ttl, now: time.Now}
}

// Issue creates a new session with a fresh id.
func (s *SessionServiceImpl) Issue() (Session, error) {
	id := uuid.NewString()
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}
	return Session{ID: id, Token: token, ExpiresAt: expiresAt}, nil
}

// Validate checks a token and returns the session it names.
func (s *SessionServiceImpl) Validate(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrInvalidSession
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return Session{}, ErrInvalidSession
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return Session{}, ErrInvalidSession
	}
	return Session{ID: claims.Subject, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}
