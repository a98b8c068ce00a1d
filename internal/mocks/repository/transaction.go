package repository

import (
	"context"

	"meuapp/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager. When an expectation
// returns no error the callback runs against Factory, the way a real commit path would.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func NewMockTransactionManager(t TestingT, factory repository.RepositoryFactory) *MockTransactionManager {
	m := &MockTransactionManager{Factory: factory}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := m.Called(ctx, fn).Error(0); err != nil {
		return err
	}

	return fn(m.Factory)
}

// StubRepositoryFactory returns fixed repositories.
type StubRepositoryFactory struct {
	Credentials repository.CredentialRepository
	Sessions    repository.SessionRepository
}

func (f *StubRepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return f.Credentials
}

func (f *StubRepositoryFactory) NewSessionRepository() repository.SessionRepository {
	return f.Sessions
}
