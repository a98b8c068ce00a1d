// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"meuapp/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential matches the lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the persistence operations for credentials.
// There is no update or delete: records are immutable once registered.
type CredentialRepository interface {
	// FindByID retrieves a credential by its surrogate ID.
	FindByID(ctx context.Context, id uint) (*entity.Credential, error)

	// FindByEmail retrieves a credential by exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create persists a new credential and assigns its ID.
	// A second record with the same email fails with domainerrors.ErrDuplicateEmail.
	Create(ctx context.Context, credential *entity.Credential) error
}
