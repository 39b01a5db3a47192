package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCategory is returned when a category label from external
	// input does not name one of the defined Leitner boxes.
	ErrInvalidCategory = errors.New("invalid category")
)

// ValidationError carries the field and reason of a failed validation.
// It wraps ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Field   string // The field that failed validation (e.g., "question")
	Message string // Human-readable description of the failure
	Err     error  // Underlying sentinel, usually ErrValidation
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field and message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     ErrValidation,
	}
}
