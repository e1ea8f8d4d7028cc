package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// AuthResult is returned on a successful login.
type AuthResult struct {
	Token    string
	Username domain.Username
	Role     domain.UserRole
}

// AuthUseCase authenticates users and checks issued tokens.
type AuthUseCase interface {
	// Authenticate checks the credentials and issues a bearer token.
	// Unknown users and wrong passwords fail with the same error.
	Authenticate(ctx context.Context, cmd AuthenticateCommand) (*AuthResult, error)

	// VerifyToken returns the username a valid token was issued to.
	VerifyToken(ctx context.Context, token string) (domain.Username, error)
}

type authUseCase struct {
	users    domain.UserRepository
	hasher   domain.PasswordHasher
	issuer   domain.TokenIssuer
	verifier domain.TokenVerifier
}

// NewAuthUseCase creates an AuthUseCase.
func NewAuthUseCase(users domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, verifier domain.TokenVerifier) AuthUseCase {
	return &authUseCase{
		users:    users,
		hasher:   hasher,
		issuer:   issuer,
		verifier: verifier,
	}
}

// Authenticate implements AuthUseCase.Authenticate.
func (uc *authUseCase) Authenticate(ctx context.Context, cmd AuthenticateCommand) (*AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.users.FindByUsername(ctx, domain.Username(cmd.Username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			zerolog.Ctx(ctx).Warn().Msg("Login rejected")
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !uc.hasher.Verify(cmd.Password, user.PasswordHash) {
		zerolog.Ctx(ctx).Warn().Msg("Login rejected")
		return nil, domain.ErrAuthenticationFailed
	}

	token, err := uc.issuer.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("username", user.Username.String()).Msg("User authenticated")

	return &AuthResult{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// VerifyToken implements AuthUseCase.VerifyToken.
func (uc *authUseCase) VerifyToken(_ context.Context, token string) (domain.Username, error) {
	username, err := uc.verifier.ExtractUsername(token)
	if err != nil {
		return "", err
	}
	if !uc.verifier.IsValid(token, username) {
		return "", domain.ErrInvalidToken
	}
	return username, nil
}
