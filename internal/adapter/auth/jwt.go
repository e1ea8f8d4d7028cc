// Package auth implements the token and password ports of the domain with
// HS256 JWTs and bcrypt.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// Issuer is the "iss" claim of every token signed by this service.
const Issuer = "airline-booking"

// JWTService signs and verifies HS256 bearer tokens whose subject is the username.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  timeutil.Clock
}

// NewJWTService creates a JWTService. A nil clock uses the system time.
func NewJWTService(secret string, ttl time.Duration, clock timeutil.Clock) *JWTService {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue implements domain.TokenIssuer.
func (s *JWTService) Issue(username domain.Username) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username.String(),
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ExtractUsername implements domain.TokenVerifier. Tokens with a bad signature,
// another algorithm or an expired lifetime fail with domain.ErrInvalidToken.
func (s *JWTService) ExtractUsername(token string) (domain.Username, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	return domain.Username(claims.Subject), nil
}

// IsValid implements domain.TokenVerifier.
func (s *JWTService) IsValid(token string, username domain.Username) bool {
	claims, err := s.parse(token)
	if err != nil {
		return false
	}
	return claims.Subject == username.String()
}

func (s *JWTService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", domain.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return claims, nil
}

var (
	_ domain.TokenIssuer   = (*JWTService)(nil)
	_ domain.TokenVerifier = (*JWTService)(nil)
)
