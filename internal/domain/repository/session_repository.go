package repository

import (
	"context"

	"storefront/internal/errors"
)

// ErrSessionNotFound is returned when no session token has been persisted.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the bearer token issued by the authentication
// service under its well-known key. Token acquisition itself is out of
// scope; this only stores what login hands over.
type SessionRepository interface {
	// SaveToken persists the bearer token, replacing any prior one.
	SaveToken(ctx context.Context, token string) error

	// LoadToken retrieves the persisted bearer token.
	// Returns ErrSessionNotFound when no token is stored.
	LoadToken(ctx context.Context) (string, error)

	// DeleteToken removes the persisted bearer token, if any.
	DeleteToken(ctx context.Context) error
}
