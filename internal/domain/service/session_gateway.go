package service

import (
	"context"
)

// SessionUser is the identity carried by the stored bearer token, used for
// attribution only. The server verifies the token; the client just reads
// its claims.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// SessionGateway represents the authenticated identity contract consumed
// by the ordering core. Token acquisition (login/register) is an external
// concern; the core only stores, attaches and invalidates what it is
// handed.
type SessionGateway interface {
	// Token returns the stored bearer token, if any.
	Token(ctx context.Context) (string, bool)

	// CurrentUser returns the identity parsed from the stored token, if
	// the token is present and carries claims.
	CurrentUser(ctx context.Context) (*SessionUser, bool)

	// Establish stores a freshly issued bearer token.
	Establish(ctx context.Context, token string) error

	// Invalidate clears the stored session. Called on logout and whenever
	// any request fails with 401.
	Invalidate(ctx context.Context) error
}
