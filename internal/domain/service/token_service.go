package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	CredentialID uint
	SessionID    uuid.UUID
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// GenerateSessionToken signs a token for the session that expires at expiresAt.
	GenerateSessionToken(credentialID uint, sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// ValidateSessionToken checks signature and expiry and returns the claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
