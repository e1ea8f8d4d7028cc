package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/response"
	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

const bearerPrefix = "Bearer "

// TokenVerifier resolves a bearer token to the username it was issued to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (domain.Username, error)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// Auth returns middleware that requires a valid bearer token. The username is
// stored on the echo context and added to the request logger.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			token, ok := BearerToken(req.Header.Get(echo.HeaderAuthorization))
			if !ok {
				return response.Unauthorized(c, response.MsgTokenRequired)
			}

			username, err := verifier.VerifyToken(ctx, token)
			if err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("Bearer token rejected")
				return response.Unauthorized(c, response.MsgTokenInvalid)
			}

			c.Set(usernameKey, username.String())
			l := zerolog.Ctx(ctx).With().Str("username", username.String()).Logger()
			c.SetRequest(req.WithContext(l.WithContext(ctx)))

			return next(c)
		}
	}
}

// GetUsername returns the authenticated username, or "" on public routes.
func GetUsername(c echo.Context) string {
	if u, ok := c.Get(usernameKey).(string); ok {
		return u
	}
	return ""
}
