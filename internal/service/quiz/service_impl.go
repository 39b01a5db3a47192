package quiz

import (
	"context"
	"log/slog"
	"time"

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
	gate      *DailyGate
	logger    *slog.Logger
}

// NewService creates a new quiz Service implementation.
func NewService(cardStore store.CardStore, gate *DailyGate, log *slog.Logger) Service {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if gate == nil {
		panic("gate cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		cardStore: cardStore,
		gate:      gate,
		logger:    log.With(slog.String("component", "quiz_service")),
	}
}

// GetQuizCards implements Service.GetQuizCards.
func (s *serviceImpl) GetQuizCards(
	ctx context.Context,
	ownerID string,
	asOf time.Time,
) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	if s.gate.HasQuizToday(ownerID, asOf) {
		log.Debug("quiz already completed today",
			slog.String("owner_id", ownerID),
			slog.Time("as_of", asOf))
		return nil, ErrQuizAlreadyCompleted
	}

	candidates, err := s.cardStore.FindCardsForQuiz(ctx, ownerID, asOf)
	if err != nil {
		log.Error("failed to fetch quiz candidates",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID))
		return nil, &ServiceError{
			Operation: "get_quiz_cards",
			Message:   "failed to fetch candidate cards",
			Err:       err,
		}
	}

	due := leitner.FilterDue(candidates, asOf)

	// The gate engages only when a quiz is actually served. Empty results
	// leave the user free to ask again later the same day.
	if len(due) > 0 {
		s.gate.RecordQuiz(ownerID, asOf)
	}

	log.Debug("quiz cards served",
		slog.String("owner_id", ownerID),
		slog.Int("candidates", len(candidates)),
		slog.Int("due", len(due)))
	return due, nil
}
