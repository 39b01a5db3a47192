// Package quiz provides the daily quiz workflow: the per-user daily gate
// and the service that assembles a batch of due cards for review.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tbouvier/leitner-api/internal/domain"
)

// Service serves quiz card batches subject to the daily gate.
type Service interface {
	// GetQuizCards returns the owner's cards due for review as of the
	// given instant.
	//
	// Returns ErrQuizAlreadyCompleted when a non-empty quiz was already
	// served to the user on the same calendar day. A non-empty result
	// engages the gate for the rest of the day; an empty result does not,
	// so a user with nothing due may query again later the same day.
	GetQuizCards(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error)
}

// Common error types for the quiz service.
var (
	// ErrQuizAlreadyCompleted indicates the user already received a quiz
	// on the given calendar day.
	ErrQuizAlreadyCompleted = errors.New("quiz already completed today")

	// ErrOwnerRequired indicates that a quiz was requested without a
	// resolved user identity.
	ErrOwnerRequired = domain.NewValidationError("owner_id", "cannot be empty")
)

// ServiceError wraps errors from the quiz service with operation context.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
