package card

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tbouvier/leitner-api/internal/domain"
	"github.com/tbouvier/leitner-api/internal/domain/leitner"
	"github.com/tbouvier/leitner-api/internal/platform/logger"
	"github.com/tbouvier/leitner-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	cardStore store.CardStore
	logger    *slog.Logger
	nowFunc   func() time.Time // Injectable for testing

	// cardLocks serializes AnswerCard's fetch-then-write per card ID.
	// Without it two concurrent answers for the same card race and the
	// second write silently discards the first transition.
	mu        sync.Mutex
	cardLocks map[uuid.UUID]*sync.Mutex
}

// NewService creates a new card Service implementation.
func NewService(cardStore store.CardStore, log *slog.Logger) Service {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		cardStore: cardStore,
		logger:    log.With(slog.String("component", "card_service")),
		nowFunc:   time.Now,
		cardLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// CreateCard implements Service.CreateCard.
func (s *serviceImpl) CreateCard(
	ctx context.Context,
	question, answer, tag, ownerID string,
) (domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if ownerID == "" {
		return domain.Card{}, ErrOwnerRequired
	}

	now := s.nowFunc()
	card, err := domain.NewCard(question, answer, tag, ownerID,
		leitner.NextReviewDate(domain.CategoryFirst, now))
	if err != nil {
		log.Debug("card creation rejected",
			slog.String("owner_id", ownerID),
			slog.String("error", err.Error()))
		return domain.Card{}, err
	}

	saved, err := s.cardStore.Save(ctx, card)
	if err != nil {
		log.Error("failed to save card",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID))
		return domain.Card{}, &ServiceError{
			Operation: "create_card",
			Message:   "failed to save card",
			Err:       err,
		}
	}

	log.Debug("card created",
		slog.String("card_id", saved.ID.String()),
		slog.String("owner_id", ownerID),
		slog.Time("next_review_date", saved.NextReviewDate))
	return saved, nil
}

// GetCards implements Service.GetCards.
func (s *serviceImpl) GetCards(
	ctx context.Context,
	ownerID string,
	tags []string,
) ([]domain.Card, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	cards, err := s.cardStore.FindAll(ctx, ownerID, tags)
	if err != nil {
		return nil, &ServiceError{
			Operation: "get_cards",
			Message:   "failed to list cards",
			Err:       err,
		}
	}
	return cards, nil
}

// AnswerCard implements Service.AnswerCard.
func (s *serviceImpl) AnswerCard(
	ctx context.Context,
	cardID uuid.UUID,
	correct bool,
	ownerID string,
) (domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if ownerID == "" {
		return domain.Card{}, ErrOwnerRequired
	}

	unlock := s.lockCard(cardID)
	defer unlock()

	card, err := s.cardStore.FindByID(ctx, cardID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			log.Debug("card not found for answer",
				slog.String("card_id", cardID.String()),
				slog.String("owner_id", ownerID))
			return domain.Card{}, ErrCardNotFound
		}
		return domain.Card{}, &ServiceError{
			Operation: "answer_card",
			Message:   "failed to fetch card",
			Err:       err,
		}
	}

	now := s.nowFunc()
	nextCategory := card.Category.Next(correct)
	reviewed := card.WithReview(nextCategory, leitner.NextReviewDate(nextCategory, now))

	updated, err := s.cardStore.Update(ctx, reviewed)
	if err != nil {
		log.Error("failed to update card after answer",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return domain.Card{}, &ServiceError{
			Operation: "answer_card",
			Message:   "failed to update card",
			Err:       err,
		}
	}

	log.Debug("card answered",
		slog.String("card_id", cardID.String()),
		slog.Bool("correct", correct),
		slog.String("category", updated.Category.String()),
		slog.Time("next_review_date", updated.NextReviewDate))
	return updated, nil
}

// lockCard acquires the per-card mutex, creating it on first use, and
// returns the release function. Lock entries are never removed; the table
// grows with the number of distinct cards answered by this process, which
// is bounded by the card set.
func (s *serviceImpl) lockCard(cardID uuid.UUID) func() {
	s.mu.Lock()
	lock, ok := s.cardLocks[cardID]
	if !ok {
		lock = &sync.Mutex{}
		s.cardLocks[cardID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
