package impl

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"meuapp/config"
	"meuapp/internal/domain/repository"
	"meuapp/internal/infra/auth"
	"meuapp/internal/infra/persistence/sqlite"
	"meuapp/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Path:         "file:" + name + "?mode=memory&cache=shared",
			MaxOpenConns: 1,
		},
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Session: &config.SessionConfig{
			TTL:         time.Hour,
			RememberTTL: 72 * time.Hour,
		},
	}
	cfg.SecretKey.Session = "test-session-secret"

	return cfg
}

// testStack wires the real SQLite, bcrypt and JWT implementations behind the usecases.
type testStack struct {
	users          usecase.UserUsecase
	sessions       usecase.SessionUsecase
	credentialRepo repository.CredentialRepository
	sessionRepo    repository.SessionRepository
	db             *gorm.DB
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	cfg := newTestConfig(t)
	logger := newDiscardLogger()

	db, err := sqlite.Open(cfg, logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	credentialRepo := sqlite.NewCredentialRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)

	sessions := NewSessionService(SessionServiceParams{
		SessionRepo:    sessionRepo,
		CredentialRepo: credentialRepo,
		TokenService:   tokenService,
		Config:         cfg,
		Logger:         logger,
	})

	users := NewUserService(UserServiceParams{
		TxManager:      sqlite.NewTransactionManager(db),
		CredentialRepo: credentialRepo,
		Hasher:         auth.NewBcryptHasher(cfg),
		Sessions:       sessions,
		Logger:         logger,
	})

	return &testStack{
		users:          users,
		sessions:       sessions,
		credentialRepo: credentialRepo,
		sessionRepo:    sessionRepo,
		db:             db,
	}
}
