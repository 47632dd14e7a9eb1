// Package auth implements the session contract over the persisted bearer token.
package auth

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// sessionGateway implements service.SessionGateway. The token is cached in
// memory and backed by the local state store; any 401 from the API layer
// invalidates both.
type sessionGateway struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger

	mu     sync.RWMutex
	token  string
	loaded bool
}

// NewSessionGateway is the constructor for sessionGateway.
func NewSessionGateway(sessionRepo repository.SessionRepository, logger *slog.Logger) service.SessionGateway {
	return &sessionGateway{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Token returns the stored bearer token, if any.
func (g *sessionGateway) Token(ctx context.Context) (string, bool) {
	g.mu.RLock()
	if g.loaded {
		defer g.mu.RUnlock()

		return g.token, g.token != ""
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.loaded {
		token, err := g.sessionRepo.LoadToken(ctx)
		if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			// A broken session store degrades to guest mode.
			g.logger.Warn("Failed to load session token, continuing as guest", "error", err)
		}
		g.token = token
		g.loaded = true
	}

	return g.token, g.token != ""
}

// CurrentUser returns the identity parsed from the stored token. The token
// is decoded without signature verification; the server remains the
// authority and rejects anything forged.
func (g *sessionGateway) CurrentUser(ctx context.Context) (*service.SessionUser, bool) {
	token, ok := g.Token(ctx)
	if !ok {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		g.logger.Warn("Failed to parse session token claims", "error", err)

		return nil, false
	}

	user := &service.SessionUser{}
	if sub, err := claims.GetSubject(); err == nil {
		user.ID = sub
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}

	if user.ID == "" {
		return nil, false
	}

	return user, true
}

// Establish stores a freshly issued bearer token.
func (g *sessionGateway) Establish(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := g.sessionRepo.SaveToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to persist session token")
	}

	g.mu.Lock()
	g.token = token
	g.loaded = true
	g.mu.Unlock()

	return nil
}

// Invalidate clears the stored session.
func (g *sessionGateway) Invalidate(ctx context.Context) error {
	if err := g.sessionRepo.DeleteToken(ctx); err != nil {
		return errors.Wrap(err, "failed to delete session token")
	}

	g.mu.Lock()
	g.token = ""
	g.loaded = true
	g.mu.Unlock()

	g.logger.Info("Session invalidated")

	return nil
}
