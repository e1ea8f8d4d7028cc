package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

const testSecret = "test-secret-with-at-least-32-bytes!!"

func TestJWTService_RoundTrip(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))
	svc := NewJWTService(testSecret, 24*time.Hour, clock)

	token, err := svc.Issue("admin")
	require.NoError(t, err)

	username, err := svc.ExtractUsername(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Username("admin"), username)
	assert.True(t, svc.IsValid(token, "admin"))
	assert.False(t, svc.IsValid(token, "user"))
}

func TestJWTService_Expiry(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))
	svc := NewJWTService(testSecret, time.Hour, clock)

	token, err := svc.Issue("admin")
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	assert.True(t, svc.IsValid(token, "admin"))

	clock.Advance(2 * time.Minute)
	assert.False(t, svc.IsValid(token, "admin"))
	_, err = svc.ExtractUsername(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	svc := NewJWTService(testSecret, time.Hour, timeutil.NewMockClock(now))

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret-with-32-bytes-or-more"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims.Issuer = "someone-else"
	otherIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin", Issuer: Issuer}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "wrong signing key", token: otherKey},
		{name: "unexpected algorithm", token: hs512},
		{name: "wrong issuer", token: otherIssuer},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ExtractUsername(tt.token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
			assert.False(t, svc.IsValid(tt.token, "admin"))
		})
	}
}

func TestJWTService_NilClock(t *testing.T) {
	svc := NewJWTService(testSecret, time.Minute, nil)

	token, err := svc.Issue("user")
	require.NoError(t, err)
	assert.True(t, svc.IsValid(token, "user"))
}
