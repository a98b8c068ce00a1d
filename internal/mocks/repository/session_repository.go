package repository

import (
	"context"

	"meuapp/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository mocks repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func NewMockSessionRepository(t TestingT) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	args := m.Called(ctx, tokenHash)
	session, _ := args.Get(0).(*entity.Session)

	return session, args.Error(1)
}

func (m *MockSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}
