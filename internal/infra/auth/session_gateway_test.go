package auth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestSessionGateway_TokenLazyLoadsOnce(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		LoadToken(mock.Anything).
		Return("stored-token", nil).
		Once()

	gateway := NewSessionGateway(sessionRepo, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	token, ok := gateway.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "stored-token", token)

	// Second read comes from cache; the mock would fail on a second load.
	token, ok = gateway.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "stored-token", token)
}

func TestSessionGateway_NoStoredTokenMeansGuest(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		LoadToken(mock.Anything).
		Return("", repository.ErrSessionNotFound)

	gateway := NewSessionGateway(sessionRepo, slog.New(slog.DiscardHandler))

	_, ok := gateway.Token(context.Background())
	assert.False(t, ok)

	_, ok = gateway.CurrentUser(context.Background())
	assert.False(t, ok)
}

func TestSessionGateway_BrokenStoreDegradesToGuest(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		LoadToken(mock.Anything).
		Return("", errors.New("database is locked"))

	gateway := NewSessionGateway(sessionRepo, slog.New(slog.DiscardHandler))

	_, ok := gateway.Token(context.Background())
	assert.False(t, ok)
}

func TestSessionGateway_CurrentUserParsesClaims(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"name":  "Ada",
		"email": "ada@example.com",
	})

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		LoadToken(mock.Anything).
		Return(token, nil)

	gateway := NewSessionGateway(sessionRepo, slog.New(slog.DiscardHandler))

	user, ok := gateway.CurrentUser(context.Background())
	require.True(t, ok)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestSessionGateway_MalformedTokenYieldsNoUser(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		LoadToken(mock.Anything).
		Return("not-a-jwt", nil)

	gateway := NewSessionGateway(sessionRepo, slog.New(slog.DiscardHandler))

	_, ok := gateway.CurrentUser(context.Background())
	assert.False(t, ok)
}

func TestSessionGateway_EstablishAndInvalidate(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		SaveToken(mock.Anything, "fresh-token").
		Return(nil)
	sessionRepo.EXPECT().
		DeleteToken(mock.Anything).
		Return(nil)

	gateway := NewSessionGateway(sessionRepo, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	require.NoError(t, gateway.Establish(ctx, "fresh-token"))

	token, ok := gateway.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "fresh-token", token)

	require.NoError(t, gateway.Invalidate(ctx))

	_, ok = gateway.Token(ctx)
	assert.False(t, ok)
}

func TestSessionGateway_EstablishRejectsEmptyToken(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	gateway := NewSessionGateway(sessionRepo, slog.New(slog.DiscardHandler))

	assert.Error(t, gateway.Establish(context.Background(), ""))
}
