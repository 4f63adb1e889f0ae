//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/guttosm/mary-storefront/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_IssueAndValidate(t *testing.T) {
	s := NewSessionService(config.SessionConfig{Secret: "secret", TTL: time.Hour})

	issued, err := s.Issue()
	require.NoError(t, err)
	_, err = uuid.Parse(issued.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	got, err := s.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, got.ID)

	other, err := s.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, issued.ID, other.ID)
}

func TestSessionService_Validate_Rejects(t *testing.T) {
	s := NewSessionService(config.SessionConfig{Secret: "secret", TTL: time.Hour})
	good, err := s.Issue()
	require.NoError(t, err)

	foreign, err := NewSessionService(config.SessionConfig{Secret: "other", TTL: time.Hour}).Issue()
	require.NoError(t, err)

	expiredSvc := NewSessionService(config.SessionConfig{Secret: "secret", TTL: time.Hour})
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Issue()
	require.NoError(t, err)

	notUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  sessionIssuer,
		Subject: uuid.NewString(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "tampered", token: good.Token + "x"},
		{name: "other secret", token: foreign.Token},
		{name: "expired", token: expired.Token},
		{name: "subject is not a session id", token: notUUID},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestNewSessionService_DefaultTTL(t *testing.T) {
	s := NewSessionService(config.SessionConfig{Secret: "secret"})
	assert.Equal(t, 30*24*time.Hour, s.ttl)
}
