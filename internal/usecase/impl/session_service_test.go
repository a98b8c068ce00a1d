package impl

import (
	"testing"
	"time"

	"meuapp/internal/domain/entity"
	domainerrors "meuapp/internal/domain/errors"
	"meuapp/internal/domain/repository"
	"meuapp/internal/usecase"
	"meuapp/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginTicket(t *testing.T, s *testStack, remember bool) (*entity.Credential, *usecase.SessionTicket) {
	t.Helper()

	reg := register(t, s, "a@example.com", "secret1")
	out, err := s.users.Login(t.Context(), usecase.LoginInput{Email: "a@example.com", Password: "secret1", Remember: remember})
	require.NoError(t, err)

	return reg.Credential, out.Session
}

func TestSessionService_EstablishStoresOnlyHash(t *testing.T) {
	s := newTestStack(t)
	_, ticket := loginTicket(t, s, false)

	stored, err := s.sessionRepo.FindByTokenHash(t.Context(), util.HashToken(ticket.Token))
	require.NoError(t, err)
	assert.NotEqual(t, ticket.Token, stored.TokenHash)
	assert.False(t, stored.Remember)
}

func TestSessionService_RememberSelectsLifetime(t *testing.T) {
	tests := []struct {
		name     string
		remember bool
		ttl      time.Duration
	}{
		{name: "browser session", remember: false, ttl: time.Hour},
		{name: "remembered", remember: true, ttl: 72 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStack(t)
			before := time.Now()

			_, ticket := loginTicket(t, s, tt.remember)

			assert.Equal(t, tt.remember, ticket.Remember)
			assert.WithinDuration(t, before.Add(tt.ttl), ticket.ExpiresAt, 2*time.Second)
		})
	}
}

func TestSessionService_CurrentUserAbsent(t *testing.T) {
	s := newTestStack(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := s.sessions.CurrentUser(t.Context(), token)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated), "token %q", token)
	}
}

func TestSessionService_TerminateRevokesToken(t *testing.T) {
	s := newTestStack(t)
	credential, ticket := loginTicket(t, s, true)
	ctx := t.Context()

	current, err := s.sessions.CurrentUser(ctx, ticket.Token)
	require.NoError(t, err)
	assert.Equal(t, credential.ID, current.ID)

	require.NoError(t, s.sessions.Terminate(ctx, ticket.Token))

	// The token is still validly signed, but the row is gone.
	_, err = s.sessions.CurrentUser(ctx, ticket.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	// Terminating again, or with no token, is harmless.
	assert.NoError(t, s.sessions.Terminate(ctx, ticket.Token))
	assert.NoError(t, s.sessions.Terminate(ctx, ""))
}

func TestSessionService_SessionsAreIndependent(t *testing.T) {
	s := newTestStack(t)
	register(t, s, "a@example.com", "secret1")
	ctx := t.Context()

	first, err := s.users.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	second, err := s.users.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Session.Token, second.Session.Token)

	require.NoError(t, s.sessions.Terminate(ctx, first.Session.Token))

	_, err = s.sessions.CurrentUser(ctx, second.Session.Token)
	assert.NoError(t, err)
}

func TestSessionService_ExpiredRowIsDeleted(t *testing.T) {
	s := newTestStack(t)
	credential := register(t, s, "a@example.com", "secret1").Credential
	ctx := t.Context()

	srv := s.sessions.(*sessionService)
	ticket, err := srv.Establish(ctx, credential.ID, false)
	require.NoError(t, err)

	// Move the clock past the row's expiry; the token itself is checked with the real clock.
	srv.now = func() time.Time { return ticket.ExpiresAt.Add(time.Second) }
	defer func() { srv.now = time.Now }()

	_, err = srv.CurrentUser(ctx, ticket.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = s.sessionRepo.FindByTokenHash(ctx, util.HashToken(ticket.Token))
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionService_RowMustMatchClaims(t *testing.T) {
	s := newTestStack(t)
	credential, ticket := loginTicket(t, s, false)
	ctx := t.Context()
	hash := util.HashToken(ticket.Token)

	// Replace the row with one for another session id but the same token hash.
	require.NoError(t, s.sessionRepo.DeleteByTokenHash(ctx, hash))
	require.NoError(t, s.sessionRepo.Create(ctx, &entity.Session{
		ID:           uuid.New(),
		CredentialID: credential.ID,
		TokenHash:    hash,
		ExpiresAt:    ticket.ExpiresAt,
	}))

	_, err := s.sessions.CurrentUser(ctx, ticket.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

// Example scenario: register, login, resolve, logout, resolve again.
func TestSessionService_Scenario(t *testing.T) {
	s := newTestStack(t)
	ctx := t.Context()

	reg, err := s.users.Register(ctx, usecase.RegisterInput{
		Email:                "a@example.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	})
	require.NoError(t, err)

	login, err := s.users.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "/", login.RedirectTo)

	current, err := s.sessions.CurrentUser(ctx, login.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.Credential.ID, current.ID)

	require.NoError(t, s.sessions.Terminate(ctx, login.Session.Token))

	_, err = s.sessions.CurrentUser(ctx, login.Session.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
