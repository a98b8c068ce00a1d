package impl

import (
	"context"
	"log/slog"
	"time"

	"meuapp/config"
	deliverycontext "meuapp/internal/delivery/context"
	"meuapp/internal/domain/entity"
	domainerrors "meuapp/internal/domain/errors"
	"meuapp/internal/domain/repository"
	"meuapp/internal/domain/service"
	"meuapp/internal/usecase"
	"meuapp/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo    repository.SessionRepository
	credentialRepo repository.CredentialRepository
	tokenService   service.TokenService
	ttl            time.Duration
	rememberTTL    time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo    repository.SessionRepository
	CredentialRepo repository.CredentialRepository
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := &sessionService{
		sessionRepo:    params.SessionRepo,
		credentialRepo: params.CredentialRepo,
		tokenService:   params.TokenService,
		ttl:            24 * time.Hour,
		rememberTTL:    30 * 24 * time.Hour,
		now:            time.Now,
		logger:         params.Logger,
	}
	if s := params.Config.Session; s != nil {
		if s.TTL > 0 {
			srv.ttl = s.TTL
		}
		if s.RememberTTL > 0 {
			srv.rememberTTL = s.RememberTTL
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Establish stores a new session row and signs the token the client will carry.
func (srv *sessionService) Establish(ctx context.Context, credentialID uint, remember bool) (*usecase.SessionTicket, error) {
	ttl := srv.ttl
	if remember {
		ttl = srv.rememberTTL
	}
	// JWT expiry has second precision; keep the row in step with it.
	expiresAt := srv.now().Add(ttl).UTC().Truncate(time.Second)

	sessionID := uuid.New()
	token, err := srv.tokenService.GenerateSessionToken(credentialID, sessionID, expiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	session := &entity.Session{
		ID:           sessionID,
		CredentialID: credentialID,
		TokenHash:    util.HashToken(token),
		Remember:     remember,
		ExpiresAt:    expiresAt,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Debug("Session established",
		slog.String("session_id", sessionID.String()),
		slog.Time("expires_at", expiresAt),
	)

	return &usecase.SessionTicket{
		Token:     token,
		ExpiresAt: expiresAt,
		Remember:  remember,
	}, nil
}

// CurrentUser resolves token to its credential. Any invalid, revoked or expired token
// yields ErrUnauthenticated; only storage failures surface as other errors.
func (srv *sessionService) CurrentUser(ctx context.Context, token string) (*entity.Credential, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ValidateSessionToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid session token")
	}

	tokenHash := util.HashToken(token)
	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("session revoked")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if session.ID != claims.SessionID || session.CredentialID != claims.CredentialID {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("session does not match token")
	}

	if session.IsExpired(srv.now()) {
		if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
		}

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("session expired")
	}

	credential, err := srv.credentialRepo.FindByID(ctx, session.CredentialID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("credential no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	return credential, nil
}

// Terminate deletes the session row, so the token stops working even before it expires.
func (srv *sessionService) Terminate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, util.HashToken(token)); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	srv.log(ctx).Debug("Session terminated")

	return nil
}
