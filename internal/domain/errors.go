package domain

import (
	"errors"
	"fmt"
)

// Business errors shared across layers. Handlers map them to HTTP
// statuses; nothing below the handler layer swallows or retries them.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// ValidationError reports a command field that failed its constraint.
// It is raised at the transfer-object boundary, before any repository call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
