package repository

import (
	"context"
	"errors"

	"meuapp/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session matches the given token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores the server side of login sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the hash of its token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session. Deleting a missing session is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
