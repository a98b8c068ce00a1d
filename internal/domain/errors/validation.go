package errors

import (
	"net/http"
	"strings"
)

// FieldError is a violation scoped to a single form field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found in one submission.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError builds a ValidationError from the given field errors.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: append([]FieldError(nil), fields...)}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns the field violations in the order they were found.
func (e *ValidationError) Fields() []FieldError {
	return append([]FieldError(nil), e.fields...)
}

// First returns the first violation reported.
func (e *ValidationError) First() (FieldError, bool) {
	if len(e.fields) == 0 {
		return FieldError{}, false
	}

	return e.fields[0], true
}

// ByField groups messages per field, keeping their order.
func (e *ValidationError) ByField() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for _, f := range e.fields {
		out[f.Field] = append(out[f.Field], f.Message)
	}

	return out
}
