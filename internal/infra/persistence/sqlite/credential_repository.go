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

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByID retrieves a single credential by its surrogate ID.
func (repo *credentialRepository) FindByID(ctx context.Context, id uint) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by id")
	}

	return toCredentialDomain(&credentialM), nil
}

// FindByEmail retrieves a single credential by exact email match.
// SQLite's default BINARY collation keeps the comparison case-sensitive.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return toCredentialDomain(&credentialM), nil
}

// Create inserts the credential. The unique index on email rejects a second
// registration even when two requests pass the existence check concurrently.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
