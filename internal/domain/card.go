package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors.
var (
	// ErrCardIDEmpty is returned when a card ID is nil.
	ErrCardIDEmpty = NewValidationError("id", "cannot be empty")

	// ErrCardOwnerEmpty is returned when a card's owner ID is empty.
	ErrCardOwnerEmpty = NewValidationError("owner_id", "cannot be empty")

	// ErrCardQuestionEmpty is returned when a card's question is empty.
	ErrCardQuestionEmpty = NewValidationError("question", "cannot be empty")

	// ErrCardAnswerEmpty is returned when a card's answer is empty.
	ErrCardAnswerEmpty = NewValidationError("answer", "cannot be empty")

	// ErrCardCategoryInvalid is returned when a card's category is not one
	// of the defined boxes.
	ErrCardCategoryInvalid = NewValidationError("category", "is not a valid box")
)

// Card is a flashcard owned by a single user. A Card value is immutable:
// answering a card produces a new value via WithReview, never an in-place
// mutation. The store holds the only durable copy.
type Card struct {
	ID             uuid.UUID `json:"id"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	Tag            string    `json:"tag,omitempty"` // optional; empty means untagged
	Category       Category  `json:"category"`
	OwnerID        string    `json:"owner_id"`
	NextReviewDate time.Time `json:"next_review_date"`
}

// NewCard creates a Card in the lowest box for the given owner.
// It generates a new UUID for the card ID. The caller supplies the first
// scheduled review date; the scheduler owns that arithmetic.
// Returns a ValidationError if any required field is empty.
func NewCard(question, answer, tag, ownerID string, nextReview time.Time) (Card, error) {
	card := Card{
		ID:             uuid.New(),
		Question:       question,
		Answer:         answer,
		Tag:            tag,
		Category:       CategoryFirst,
		OwnerID:        ownerID,
		NextReviewDate: nextReview,
	}

	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Validate checks the Card's invariants.
// Returns the first failing field's ValidationError.
func (c Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}
	if c.OwnerID == "" {
		return ErrCardOwnerEmpty
	}
	if c.Question == "" {
		return ErrCardQuestionEmpty
	}
	if c.Answer == "" {
		return ErrCardAnswerEmpty
	}
	if !c.Category.IsValid() {
		return ErrCardCategoryInvalid
	}
	return nil
}

// WithReview returns a copy of the card moved to the given category with a
// new scheduled review date. All other fields are unchanged; the receiver
// is not modified.
func (c Card) WithReview(category Category, nextReview time.Time) Card {
	next := c
	next.Category = category
	next.NextReviewDate = nextReview
	return next
}
