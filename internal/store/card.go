package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tbouvier/leitner-api/internal/domain"
)

// CardStore defines the interface for card persistence.
//
// Every method takes the owner's ID and never returns another owner's
// cards; ownership filtering is the store's responsibility, eligibility
// filtering is not (see FindCardsForQuiz).
type CardStore interface {
	// FindAll retrieves all cards belonging to the owner. When tags is
	// non-empty the result is restricted to cards whose tag is in tags;
	// an empty or nil tags slice means no tag restriction.
	FindAll(ctx context.Context, ownerID string, tags []string) ([]domain.Card, error)

	// FindByID retrieves a single card by its ID.
	// Returns ErrCardNotFound if the card does not exist or belongs to a
	// different owner.
	FindByID(ctx context.Context, id uuid.UUID, ownerID string) (domain.Card, error)

	// Save persists a newly created card and returns the stored value.
	// Returns ErrDuplicate if a card with the same ID already exists and
	// ErrInvalidEntity if the card fails domain validation.
	Save(ctx context.Context, card domain.Card) (domain.Card, error)

	// Update replaces the stored card identified by card.ID and returns
	// the stored value. Returns ErrCardNotFound if no such card exists.
	Update(ctx context.Context, card domain.Card) (domain.Card, error)

	// FindCardsForQuiz retrieves the owner's candidate cards for a quiz as
	// of the given instant. Implementations may pre-filter (e.g., exclude
	// DONE cards server-side) but the core re-applies the eligibility
	// filter; correctness never depends on store-side filtering.
	FindCardsForQuiz(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error)
}
