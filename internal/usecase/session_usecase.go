package usecase

import (
	"context"
	"time"

	"meuapp/internal/domain/entity"
)

// SessionTicket is what the client needs to present the session on later requests.
type SessionTicket struct {
	Token     string
	ExpiresAt time.Time
	Remember  bool
}

// SessionUsecase issues, resolves and revokes login sessions.
type SessionUsecase interface {
	// Establish creates a session for the credential. Remember selects the longer lifetime.
	Establish(ctx context.Context, credentialID uint, remember bool) (*SessionTicket, error)

	// CurrentUser resolves a token to its credential, or fails with ErrUnauthenticated.
	CurrentUser(ctx context.Context, token string) (*entity.Credential, error)

	// Terminate revokes the session behind token. Unknown or invalid tokens are ignored.
	Terminate(ctx context.Context, token string) error
}
