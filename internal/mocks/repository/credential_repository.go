// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"meuapp/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCredentialRepository mocks repository.CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

// NewMockCredentialRepository registers expectation assertions on test cleanup.
func NewMockCredentialRepository(t TestingT) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialRepository) FindByID(ctx context.Context, id uint) (*entity.Credential, error) {
	args := m.Called(ctx, id)
	credential, _ := args.Get(0).(*entity.Credential)

	return credential, args.Error(1)
}

func (m *MockCredentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	args := m.Called(ctx, email)
	credential, _ := args.Get(0).(*entity.Credential)

	return credential, args.Error(1)
}

func (m *MockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	return m.Called(ctx, credential).Error(0)
}
