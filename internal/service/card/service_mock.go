package card

import (
	"context"

	"github.com/google/uuid"

	"github.com/tbouvier/leitner-api/internal/domain"
)

// MockService is a mock implementation of the Service interface for testing.
// Each method delegates to the corresponding Func field when set.
type MockService struct {
	CreateCardFunc func(ctx context.Context, question, answer, tag, ownerID string) (domain.Card, error)
	GetCardsFunc   func(ctx context.Context, ownerID string, tags []string) ([]domain.Card, error)
	AnswerCardFunc func(ctx context.Context, cardID uuid.UUID, correct bool, ownerID string) (domain.Card, error)
}

// Ensure MockService implements Service interface
var _ Service = (*MockService)(nil)

// CreateCard delegates to CreateCardFunc.
func (m *MockService) CreateCard(
	ctx context.Context,
	question, answer, tag, ownerID string,
) (domain.Card, error) {
	if m.CreateCardFunc != nil {
		return m.CreateCardFunc(ctx, question, answer, tag, ownerID)
	}
	return domain.Card{}, nil
}

// GetCards delegates to GetCardsFunc.
func (m *MockService) GetCards(
	ctx context.Context,
	ownerID string,
	tags []string,
) ([]domain.Card, error) {
	if m.GetCardsFunc != nil {
		return m.GetCardsFunc(ctx, ownerID, tags)
	}
	return nil, nil
}

// AnswerCard delegates to AnswerCardFunc.
func (m *MockService) AnswerCard(
	ctx context.Context,
	cardID uuid.UUID,
	correct bool,
	ownerID string,
) (domain.Card, error) {
	if m.AnswerCardFunc != nil {
		return m.AnswerCardFunc(ctx, cardID, correct, ownerID)
	}
	return domain.Card{}, nil
}
