// Package memory provides an in-memory implementation of the store
// interfaces. It is used by tests and by local development when no
// database is configured. The store owns its own lock and is safe for
// concurrent use; it holds no state beyond the process lifetime.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tbouvier/leitner-api/internal/domain"
	"github.com/tbouvier/leitner-api/internal/store"
)

// CardStore is an in-memory store.CardStore backed by a map keyed by card
// ID. Construct it with NewCardStore; the zero value is not usable.
type CardStore struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]domain.Card
}

// Ensure CardStore implements store.CardStore interface
var _ store.CardStore = (*CardStore)(nil)

// NewCardStore creates an empty in-memory card store.
func NewCardStore() *CardStore {
	return &CardStore{
		cards: make(map[uuid.UUID]domain.Card),
	}
}

// FindAll implements store.CardStore.FindAll.
func (s *CardStore) FindAll(ctx context.Context, ownerID string, tags []string) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tagSet[t] = struct{}{}
	}

	var out []domain.Card
	for _, card := range s.cards {
		if card.OwnerID != ownerID {
			continue
		}
		if len(tagSet) > 0 {
			if _, ok := tagSet[card.Tag]; !ok {
				continue
			}
		}
		out = append(out, card)
	}
	return out, nil
}

// FindByID implements store.CardStore.FindByID.
// Returns store.ErrCardNotFound when the card is absent or foreign-owned.
func (s *CardStore) FindByID(ctx context.Context, id uuid.UUID, ownerID string) (domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	if !ok || card.OwnerID != ownerID {
		return domain.Card{}, store.ErrCardNotFound
	}
	return card, nil
}

// Save implements store.CardStore.Save.
func (s *CardStore) Save(ctx context.Context, card domain.Card) (domain.Card, error) {
	if err := card.Validate(); err != nil {
		return domain.Card{}, store.NewStoreError("card", "save", "validation failed", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[card.ID]; ok {
		return domain.Card{}, store.ErrDuplicate
	}
	s.cards[card.ID] = card
	return card, nil
}

// Update implements store.CardStore.Update.
// Returns store.ErrCardNotFound when no card with card.ID exists.
func (s *CardStore) Update(ctx context.Context, card domain.Card) (domain.Card, error) {
	if err := card.Validate(); err != nil {
		return domain.Card{}, store.NewStoreError("card", "update", "validation failed", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[card.ID]; !ok {
		return domain.Card{}, store.ErrCardNotFound
	}
	s.cards[card.ID] = card
	return card, nil
}

// FindCardsForQuiz implements store.CardStore.FindCardsForQuiz.
// It returns the owner's full card set; eligibility is the core's concern.
func (s *CardStore) FindCardsForQuiz(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error) {
	return s.FindAll(ctx, ownerID, nil)
}

// Len returns the number of stored cards, for test assertions.
func (s *CardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
