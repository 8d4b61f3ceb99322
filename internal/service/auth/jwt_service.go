package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens so one can
// never be presented in place of the other.
type TokenType string

const (
	// TokenTypeAccess is the short-lived token sent on every API request.
	TokenTypeAccess TokenType = "access"

	// TokenTypeRefresh is the long-lived token used only to obtain a new
	// token pair.
	TokenTypeRefresh TokenType = "refresh"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates an access token string and extracts the
	// claims. Returns ErrExpiredToken, ErrTokenNotYetValid,
	// ErrWrongTokenType or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token for the
	// user. Refresh tokens have a longer lifetime than access tokens.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateRefreshToken validates a refresh token string and extracts
	// the claims, with the same error contract as ValidateToken.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// TokenType indicates the purpose of the token.
	TokenType TokenType `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
