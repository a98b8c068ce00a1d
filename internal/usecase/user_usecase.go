// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"meuapp/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput is the submitted registration form.
type RegisterInput struct {
	Email                string
	Password             string
	PasswordConfirmation string
}

// LoginInput is the submitted login form.
type LoginInput struct {
	Email    string
	Password string
	Remember bool   // Issue a persistent cookie instead of a browser-session one.
	Next     string // Where the guard wanted to send the user; ignored unless it is a local path.
}

// --- Output DTOs ---

// RegisterOutput returns the newly created credential.
type RegisterOutput struct {
	Credential *entity.Credential
}

// LoginOutput carries the established session and where to send the user next.
type LoginOutput struct {
	Credential *entity.Credential
	Session    *SessionTicket
	RedirectTo string
}

// UserUsecase defines the registration and authentication workflows.
type UserUsecase interface {
	// Register validates the input, rejects taken emails and stores a new credential.
	// It never establishes a session.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies the credentials and establishes a session.
	// Unknown email and wrong password fail identically with ErrAuthenticationFailed.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
