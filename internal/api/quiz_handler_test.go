package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbouvier/leitner-api/internal/domain"
	"github.com/tbouvier/leitner-api/internal/service/card"
	"github.com/tbouvier/leitner-api/internal/service/quiz"
)

// newQuizRouter mounts the handler behind a chi router so URL parameters
// resolve as they do in production.
func newQuizRouter(handler *QuizHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/quiz", handler.GetQuizCards)
	r.Post("/api/quiz/{cardId}/answer", handler.AnswerCard)
	return r
}

func TestGetQuizCards(t *testing.T) {
	t.Parallel()

	ownerID := "marie"
	dueCard := testCard(t, ownerID)

	tests := []struct {
		name           string
		target         string
		userIDInCtx    string
		serviceResult  []domain.Card
		serviceError   error
		expectedStatus int
		expectedLen    int
	}{
		{
			name:           "Success",
			target:         "/api/quiz",
			userIDInCtx:    ownerID,
			serviceResult:  []domain.Card{dueCard},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "Explicit Date",
			target:         "/api/quiz?date=2024-03-10",
			userIDInCtx:    ownerID,
			serviceResult:  []domain.Card{dueCard},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "Malformed Date",
			target:         "/api/quiz?date=10/03/2024",
			userIDInCtx:    ownerID,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Already Completed",
			target:         "/api/quiz",
			userIDInCtx:    ownerID,
			serviceError:   quiz.ErrQuizAlreadyCompleted,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Nothing Due",
			target:         "/api/quiz",
			userIDInCtx:    ownerID,
			serviceResult:  []domain.Card{},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "No User In Context",
			target:         "/api/quiz",
			userIDInCtx:    "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			quizMock := &quiz.MockService{
				GetQuizCardsFunc: func(ctx context.Context, gotOwner string, asOf time.Time) ([]domain.Card, error) {
					assert.Equal(t, tc.userIDInCtx, gotOwner)
					if tc.serviceError != nil {
						return nil, tc.serviceError
					}
					return tc.serviceResult, nil
				},
			}
			handler := NewQuizHandler(quizMock, &card.MockService{}, slog.Default())

			req := newAuthedRequest(t, http.MethodGet, tc.target, "", tc.userIDInCtx)
			rec := httptest.NewRecorder()
			newQuizRouter(handler).ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp []CardResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Len(t, resp, tc.expectedLen)
			}
		})
	}
}

func TestGetQuizCardsPassesParsedDate(t *testing.T) {
	t.Parallel()

	var gotAsOf time.Time
	quizMock := &quiz.MockService{
		GetQuizCardsFunc: func(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error) {
			gotAsOf = asOf
			return nil, nil
		},
	}
	handler := NewQuizHandler(quizMock, &card.MockService{}, slog.Default())

	req := newAuthedRequest(t, http.MethodGet, "/api/quiz?date=2024-03-10", "", "marie")
	rec := httptest.NewRecorder()
	newQuizRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2024, gotAsOf.Year())
	assert.Equal(t, time.March, gotAsOf.Month())
	assert.Equal(t, 10, gotAsOf.Day())
}

func TestAnswerCard(t *testing.T) {
	t.Parallel()

	ownerID := "marie"
	cardID := uuid.New()

	tests := []struct {
		name           string
		target         string
		body           string
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "Correct Answer",
			target:         "/api/quiz/" + cardID.String() + "/answer",
			body:           `{"isValid":true}`,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Incorrect Answer",
			target:         "/api/quiz/" + cardID.String() + "/answer",
			body:           `{"isValid":false}`,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Missing isValid",
			target:         "/api/quiz/" + cardID.String() + "/answer",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Non-Boolean isValid",
			target:         "/api/quiz/" + cardID.String() + "/answer",
			body:           `{"isValid":"yes"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid Card ID",
			target:         "/api/quiz/not-a-uuid/answer",
			body:           `{"isValid":true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Card Not Found",
			target:         "/api/quiz/" + cardID.String() + "/answer",
			body:           `{"isValid":true}`,
			serviceError:   card.ErrCardNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cardMock := &card.MockService{
				AnswerCardFunc: func(ctx context.Context, gotCardID uuid.UUID, correct bool, gotOwner string) (domain.Card, error) {
					assert.Equal(t, ownerID, gotOwner)
					if tc.serviceError != nil {
						return domain.Card{}, tc.serviceError
					}
					return testCard(t, ownerID), nil
				},
			}
			handler := NewQuizHandler(&quiz.MockService{}, cardMock, slog.Default())

			req := newAuthedRequest(t, http.MethodPost, tc.target, tc.body, ownerID)
			rec := httptest.NewRecorder()
			newQuizRouter(handler).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.String(), "successful answer returns no body")
			}
		})
	}
}
