package sqlite

import (
	"context"

	"meuapp/internal/domain/entity"
	domainerrors "meuapp/internal/domain/errors"
	"meuapp/internal/domain/repository"
	"meuapp/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("session token already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session by token hash. Expiry is left to the caller.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	return toSessionDomain(&sessionM), nil
}

// DeleteByTokenHash removes the session with the given token hash, if any.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.SessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:           data.ID,
		CredentialID: data.CredentialID,
		TokenHash:    data.TokenHash,
		Remember:     data.Remember,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:           data.ID,
		CredentialID: data.CredentialID,
		TokenHash:    data.TokenHash,
		Remember:     data.Remember,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}
