// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"time"

	"meuapp/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t TestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t TestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateSessionToken(credentialID uint, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	args := m.Called(credentialID, sessionID, expiresAt)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.SessionClaims)

	return claims, args.Error(1)
}
