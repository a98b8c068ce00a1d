// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"meuapp/internal/domain/entity"
	"meuapp/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockSessionUsecase mocks usecase.SessionUsecase.
type MockSessionUsecase struct {
	mock.Mock
}

func NewMockSessionUsecase(t TestingT) *MockSessionUsecase {
	m := &MockSessionUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionUsecase) Establish(ctx context.Context, credentialID uint, remember bool) (*usecase.SessionTicket, error) {
	args := m.Called(ctx, credentialID, remember)
	ticket, _ := args.Get(0).(*usecase.SessionTicket)

	return ticket, args.Error(1)
}

func (m *MockSessionUsecase) CurrentUser(ctx context.Context, token string) (*entity.Credential, error) {
	args := m.Called(ctx, token)
	credential, _ := args.Get(0).(*entity.Credential)

	return credential, args.Error(1)
}

func (m *MockSessionUsecase) Terminate(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
