package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-0123456789abcdefghijklmnop"

func newTestService(t *testing.T) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	return impl
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   "too-short",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenTypeConfusionRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	access, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(ctx, access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.ValidateToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	// Issue in the past, validate "now": past the lifetime plus skew.
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.timeFunc = func() time.Time { return issuedAt }
	token, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	svc.timeFunc = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_, err := svc.ValidateToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedSignatureRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	other := newTestService(t)
	other.signingKey = []byte("another-secret-0123456789abcdefghijk")

	_, err = other.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse battery staple"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, verifier.Compare(string(hashed), "correct horse battery staple"))
	assert.Error(t, verifier.Compare(string(hashed), "wrong password"))
}
