package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side record of an authenticated browser.
// The raw token lives only in the client cookie; the store keeps its SHA-256 hash.
type Session struct {
	ID           uuid.UUID // Session identifier, embedded in the token as the "sid" claim.
	CredentialID uint      // The credential this session authenticates.
	TokenHash    string    // SHA-256 hash of the signed token, used for lookup and revocation.
	Remember     bool      // Whether the client was issued a persistent cookie.
	ExpiresAt    time.Time // The session is unusable after this instant.
	CreatedAt    time.Time // When the user logged in.
}

// IsExpired reports whether the session is no longer valid at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
