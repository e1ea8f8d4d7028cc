package http

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/middleware"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/response"
	"github.com/airline-booking/airline-ticket-booking/internal/usecase"
)

// AuthHandler handles login and token verification.
type AuthHandler struct {
	useCase usecase.AuthUseCase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(uc usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: uc}
}

// Login handles POST /api/v1/auth/login
//
// @Summary Log in
// @Description Exchanges username and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SwaggerLoginResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 401 {object} SwaggerErrorResponse "Wrong credentials"
// @Failure 429 {object} SwaggerErrorResponse "Rate limited"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	res, err := h.useCase.Authenticate(c.Request().Context(), usecase.AuthenticateCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return response.OK(c, ToLoginResponse(res), response.MsgLoginSucceeded)
}

// Verify handles GET /api/v1/auth/verify
//
// @Summary Verify a token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SwaggerVerifyResponse
// @Failure 401 {object} SwaggerErrorResponse "Missing or invalid token"
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return response.Unauthorized(c, response.MsgTokenRequired)
	}

	username, err := h.useCase.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}

	return response.OK(c,
		VerifyResponse{Username: username.String(), Valid: true},
		fmt.Sprintf(response.MsgTokenValid, username),
	)
}
