package sqlite

import (
	"testing"
	"time"

	"meuapp/internal/domain/entity"
	"meuapp/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := t.Context()

	session := &entity.Session{
		ID:           uuid.New(),
		CredentialID: 7,
		TokenHash:    "abc123",
		Remember:     true,
		ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Create(ctx, session))
	assert.False(t, session.CreatedAt.IsZero())

	found, err := repo.FindByTokenHash(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, uint(7), found.CredentialID)
	assert.True(t, found.Remember)
	assert.True(t, session.ExpiresAt.Equal(found.ExpiresAt))

	require.NoError(t, repo.DeleteByTokenHash(ctx, "abc123"))

	_, err = repo.FindByTokenHash(ctx, "abc123")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// Deleting twice is harmless.
	require.NoError(t, repo.DeleteByTokenHash(ctx, "abc123"))
}

func TestSessionRepository_FindReturnsExpired(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := t.Context()

	session := &entity.Session{
		ID:           uuid.New(),
		CredentialID: 1,
		TokenHash:    "expired",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByTokenHash(ctx, "expired")
	require.NoError(t, err)
	assert.True(t, found.IsExpired(time.Now()))
}
