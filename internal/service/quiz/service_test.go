package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbouvier/leitner-api/internal/domain"
	"github.com/tbouvier/leitner-api/internal/platform/memory"
	"github.com/tbouvier/leitner-api/internal/store"
)

// seedCard stores a card for ownerID in the given category with the given
// scheduled review date.
func seedCard(t *testing.T, cardStore *memory.CardStore, ownerID string, category domain.Category, next time.Time) domain.Card {
	t.Helper()
	card, err := domain.NewCard("Q", "A", "", ownerID, next)
	require.NoError(t, err)
	card = card.WithReview(category, next)
	_, err = cardStore.Save(context.Background(), card)
	require.NoError(t, err)
	return card
}

func newTestService(t *testing.T) (Service, *memory.CardStore, *DailyGate) {
	t.Helper()
	cardStore := memory.NewCardStore()
	gate := NewDailyGate()
	return NewService(cardStore, gate, nil), cardStore, gate
}

func TestGetQuizCardsReturnsDueCards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, cardStore, _ := newTestService(t)

	due := seedCard(t, cardStore, "user-1", domain.CategoryFirst, asOf.AddDate(0, 0, -1))
	seedCard(t, cardStore, "user-1", domain.CategorySecond, asOf.AddDate(0, 0, 3))
	seedCard(t, cardStore, "user-1", domain.CategoryDone, asOf.AddDate(0, 0, -10))
	seedCard(t, cardStore, "user-2", domain.CategoryFirst, asOf.AddDate(0, 0, -1))

	cards, err := svc.GetQuizCards(ctx, "user-1", asOf)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, due.ID, cards[0].ID)
}

func TestGetQuizCardsEngagesGateOnlyWhenNonEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, cardStore, _ := newTestService(t)

	// Nothing due: both same-day calls succeed with empty results.
	seedCard(t, cardStore, "user-1", domain.CategoryFirst, asOf.AddDate(0, 0, 5))
	for i := 0; i < 2; i++ {
		cards, err := svc.GetQuizCards(ctx, "user-1", asOf)
		require.NoError(t, err)
		assert.Empty(t, cards, "empty result must not engage the gate")
	}

	// Once a non-empty quiz is served, the same day is locked.
	seedCard(t, cardStore, "user-1", domain.CategorySecond, asOf.AddDate(0, 0, -1))
	cards, err := svc.GetQuizCards(ctx, "user-1", asOf)
	require.NoError(t, err)
	require.NotEmpty(t, cards)

	_, err = svc.GetQuizCards(ctx, "user-1", asOf.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrQuizAlreadyCompleted)

	// The next calendar day succeeds again.
	nextDay := asOf.AddDate(0, 0, 1)
	cards, err = svc.GetQuizCards(ctx, "user-1", nextDay)
	require.NoError(t, err)
	assert.NotEmpty(t, cards)
}

func TestGetQuizCardsIsolatesUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, cardStore, _ := newTestService(t)

	seedCard(t, cardStore, "user-1", domain.CategoryFirst, asOf.AddDate(0, 0, -1))
	seedCard(t, cardStore, "user-2", domain.CategoryFirst, asOf.AddDate(0, 0, -1))

	_, err := svc.GetQuizCards(ctx, "user-1", asOf)
	require.NoError(t, err)

	// user-1's served quiz must not gate user-2.
	cards, err := svc.GetQuizCards(ctx, "user-2", asOf)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestGetQuizCardsRequiresOwner(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	_, err := svc.GetQuizCards(context.Background(), "", time.Now())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// failingStore returns an error from FindCardsForQuiz to verify that store
// failures surface immediately and never engage the gate.
type failingStore struct {
	store.CardStore
}

func (f *failingStore) FindCardsForQuiz(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error) {
	return nil, store.NewStoreError("card", "find_cards_for_quiz", "boom", store.ErrNotFound)
}

func TestGetQuizCardsStoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	gate := NewDailyGate()
	svc := NewService(&failingStore{memory.NewCardStore()}, gate, nil)

	_, err := svc.GetQuizCards(ctx, "user-1", asOf)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuizAlreadyCompleted)
	assert.False(t, gate.HasQuizToday("user-1", asOf), "a failed fetch must not engage the gate")
}
