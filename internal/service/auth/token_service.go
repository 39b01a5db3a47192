// Package auth provides the identity layer of the application.
//
// The identity model is deliberately stub-grade: Login accepts any
// non-empty username/password pair and issues a signed token whose subject
// IS the user identifier. There is no user store and no credential
// verification; the rest of the system only ever sees the opaque user ID
// extracted from a validated token.
package auth

import (
	"context"
	"time"
)

// Claims carries the identity extracted from a validated token.
type Claims struct {
	// UserID is the opaque identifier of the user the token was issued for.
	UserID string

	// IssuedAt and ExpiresAt are the token's validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines operations for issuing and validating access tokens.
type TokenService interface {
	// Login authenticates the given credentials and issues an access token.
	// Returns ErrEmptyCredentials when username or password is empty; any
	// non-empty pair is accepted and the username becomes the user ID.
	Login(ctx context.Context, username, password string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for anything else that fails verification.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
