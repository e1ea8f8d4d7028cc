package domain

import (
	"strings"
	"time"
)

// User is an account that can authenticate against the API.
// PasswordHash is never exposed through the HTTP layer.
type User struct {
	ID           UserID
	Username     Username
	PasswordHash string
	FirstName    string
	LastName     string
	Email        Email
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user has the given role.
func (u *User) HasRole(role UserRole) bool {
	return u.Role == role
}

// IsAdmin reports whether the user is an administrator.
func (u *User) IsAdmin() bool {
	return u.HasRole(UserRoleAdmin)
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
