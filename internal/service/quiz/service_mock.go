package quiz

import (
	"context"
	"time"

	"github.com/tbouvier/leitner-api/internal/domain"
)

// MockService is a mock implementation of the Service interface for testing.
type MockService struct {
	GetQuizCardsFunc func(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error)
}

// Ensure MockService implements Service interface
var _ Service = (*MockService)(nil)

// GetQuizCards delegates to GetQuizCardsFunc.
func (m *MockService) GetQuizCards(
	ctx context.Context,
	ownerID string,
	asOf time.Time,
) ([]domain.Card, error) {
	if m.GetQuizCardsFunc != nil {
		return m.GetQuizCardsFunc(ctx, ownerID, asOf)
	}
	return nil, nil
}
