// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "meuapp/internal/delivery/context"
	"meuapp/internal/domain/entity"
	domainerrors "meuapp/internal/domain/errors"
	"meuapp/internal/domain/repository"
	"meuapp/internal/domain/service"
	"meuapp/internal/usecase"
	"meuapp/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRedirect = "/"
	// Compared against when the email is unknown, so both failure paths pay for one bcrypt check.
	dummyPassword = "meuapp-timing-equalizer"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	sessions       usecase.SessionUsecase
	logger         *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Sessions       usecase.SessionUsecase
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		sessions:       params.Sessions,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the form, then checks uniqueness and inserts inside one transaction.
// The unique index still rejects a racing insert that slipped past the lookup.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := usecase.ValidateRegistration(input).Err(); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Password hashing failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	credential := &entity.Credential{
		Email:        input.Email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.NewCredentialRepository()

		_, findErr := credentialRepo.FindByEmail(ctx, input.Email)
		switch {
		case findErr == nil:
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		case !errors.Is(findErr, repository.ErrCredentialNotFound):
			return errors.Wrap(findErr, "failed to check email availability")
		}

		return credentialRepo.Create(ctx, credential)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Info("Registration rejected, email taken", slog.String("email", input.Email))
		} else {
			srv.log(ctx).Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("Credential registered", slog.Uint64("credential_id", uint64(credential.ID)))

	return &usecase.RegisterOutput{Credential: credential}, nil
}

// Login checks the password and establishes a session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := usecase.ValidateLogin(input).Err(); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	credential, err := srv.credentialRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Error("Login lookup failed", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to load credential")
		}

		srv.hasher.Check(input.Password, srv.timingHash())
		srv.log(ctx).Info("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("unknown email")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("password mismatch")
	}

	ticket, err := srv.sessions.Establish(ctx, credential.ID, input.Remember)
	if err != nil {
		srv.log(ctx).Error("Session could not be established", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to establish session")
	}

	srv.log(ctx).Info("Logged in", slog.Uint64("credential_id", uint64(credential.ID)), slog.Bool("remember", input.Remember))

	return &usecase.LoginOutput{
		Credential: credential,
		Session:    ticket,
		RedirectTo: util.SafeRedirectPath(input.Next, defaultRedirect),
	}, nil
}

// timingHash returns a hash of dummyPassword made with the configured cost.
func (srv *userService) timingHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Warn("Could not prepare timing hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}
