// Package card provides the card lifecycle service: creating cards,
// listing them, and processing review answers against the Leitner
// scheduler.
package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tbouvier/leitner-api/internal/domain"
)

// Service orchestrates single card operations against the card store.
type Service interface {
	// CreateCard builds a new card in the lowest box for the owner, with
	// its first review scheduled by the Leitner interval table, and
	// persists it.
	//
	// Returns a domain ValidationError (matching domain.ErrValidation)
	// when question, answer, or ownerID is empty. Exactly one store write
	// occurs on success; none on failure.
	CreateCard(ctx context.Context, question, answer, tag, ownerID string) (domain.Card, error)

	// GetCards lists the owner's cards, optionally restricted to the
	// given tags.
	GetCards(ctx context.Context, ownerID string, tags []string) ([]domain.Card, error)

	// AnswerCard records a review outcome for the card: the category moves
	// through the box state machine and the next review date is
	// recomputed from the new category. The stored card is replaced by a
	// new value; cards are never mutated in place.
	//
	// Returns ErrCardNotFound when the card does not exist or belongs to
	// a different owner; in that case no stored state changes. Concurrent
	// answers for the same card are serialized per card ID, so no update
	// is ever silently lost.
	AnswerCard(ctx context.Context, cardID uuid.UUID, correct bool, ownerID string) (domain.Card, error)
}

// Common error types for the card service.
var (
	// ErrCardNotFound indicates that the card does not exist or is not
	// owned by the caller.
	ErrCardNotFound = errors.New("card not found")

	// ErrOwnerRequired indicates that an operation was attempted without
	// a resolved user identity.
	ErrOwnerRequired = domain.NewValidationError("owner_id", "cannot be empty")
)

// ServiceError wraps errors from the card service with operation context.
// Consumers differentiate error kinds with errors.Is on the sentinels;
// the wrapper only adds context for logs.
type ServiceError struct {
	Operation string // The operation that failed (e.g., "create_card")
	Message   string // Human-readable description
	Err       error  // Underlying error
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
