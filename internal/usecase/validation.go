package usecase

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	domainerrors "meuapp/internal/domain/errors"
)

// Form field names, as posted by the templates.
const (
	FieldEmail                = "email"
	FieldPassword             = "senha"
	FieldPasswordConfirmation = "confirmar_senha"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are refused up front.
const maxPasswordBytes = 72

const (
	codeRequired      = "REQUIRED"
	codeInvalidEmail  = "INVALID_EMAIL"
	codePasswordLimit = "PASSWORD_TOO_LONG"
)

const (
	msgRequired      = "Este campo é obrigatório!"
	msgInvalidEmail  = "Por favor, insira um e-mail válido!"
	msgPasswordLimit = "A senha deve ter no máximo 72 bytes."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})

	return v
}

// ValidationResult is the outcome of validating a form: OK, or the field errors in the order found.
type ValidationResult struct {
	Errors []domainerrors.FieldError
}

// OK reports whether no violation was found.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Err returns the violations as a *ValidationError, or nil when the input is valid.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}

	return domainerrors.NewValidationError(r.Errors...)
}

func (r *ValidationResult) add(field, code, message string) {
	r.Errors = append(r.Errors, domainerrors.FieldError{Field: field, Code: code, Message: message})
}

// ValidateRegistration checks, in order: email present and well formed, password present
// and within bcrypt's limit, confirmation present and equal to the password.
// Every violation is reported, not just the first. Email uniqueness is checked later
// against the store.
func ValidateRegistration(input RegisterInput) ValidationResult {
	var result ValidationResult

	validateEmail(&result, input.Email)

	switch {
	case validate.Var(input.Password, "notblank") != nil:
		result.add(FieldPassword, codeRequired, msgRequired)
	case validate.Var(input.Password, "bcryptlen") != nil:
		result.add(FieldPassword, codePasswordLimit, msgPasswordLimit)
	}

	switch {
	case validate.Var(input.PasswordConfirmation, "notblank") != nil:
		result.add(FieldPasswordConfirmation, codeRequired, msgRequired)
	case validate.VarWithValue(input.PasswordConfirmation, input.Password, "eqfield") != nil:
		result.add(FieldPasswordConfirmation, domainerrors.ErrPasswordMismatch.ErrorCode(), domainerrors.ErrPasswordMismatch.Message())
	}

	return result
}

// ValidateLogin checks that email is present and well formed and that a password was given.
// Blank values count as missing, as on the registration form.
// Whether the email is registered is deliberately not part of form validation.
func ValidateLogin(input LoginInput) ValidationResult {
	var result ValidationResult

	validateEmail(&result, input.Email)

	if validate.Var(input.Password, "notblank") != nil {
		result.add(FieldPassword, codeRequired, msgRequired)
	}

	return result
}

func validateEmail(result *ValidationResult, email string) {
	switch {
	case validate.Var(email, "notblank") != nil:
		result.add(FieldEmail, codeRequired, msgRequired)
	case validate.Var(email, "email") != nil:
		result.add(FieldEmail, codeInvalidEmail, msgInvalidEmail)
	}
}
