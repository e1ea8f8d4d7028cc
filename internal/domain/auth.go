package domain

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=domain

// TokenIssuer issues bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(username Username) (string, error)
}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	// ExtractUsername returns the token subject. It fails with ErrInvalidToken
	// when the token is malformed, expired or signed with another key.
	ExtractUsername(token string) (Username, error)

	// IsValid reports whether token is valid and was issued to username.
	IsValid(token string, username Username) bool
}

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
