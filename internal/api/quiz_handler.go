package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tbouvier/leitner-api/internal/api/shared"
	"github.com/tbouvier/leitner-api/internal/platform/logger"
	"github.com/tbouvier/leitner-api/internal/service/card"
	"github.com/tbouvier/leitner-api/internal/service/quiz"
)

// quizDateLayout is the accepted format of the optional date query parameter.
const quizDateLayout = "2006-01-02"

// AnswerCardRequest represents the request body for answering a quiz card.
// IsValid uses a pointer so a missing field is distinguishable from false.
type AnswerCardRequest struct {
	IsValid *bool `json:"isValid"`
}

// QuizHandler handles quiz-related HTTP requests.
type QuizHandler struct {
	quizService quiz.Service
	cardService card.Service
	logger      *slog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService quiz.Service, cardService card.Service, log *slog.Logger) *QuizHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuizHandler")
	}
	return &QuizHandler{
		quizService: quizService,
		cardService: cardService,
		logger:      log.With(slog.String("component", "quiz_handler")),
	}
}

// GetQuizCards handles GET /quiz requests. The optional date query
// parameter (YYYY-MM-DD) sets the reference instant; malformed dates are
// rejected before any domain logic runs, distinctly from domain failures.
func (h *QuizHandler) GetQuizCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := shared.GetUserID(r.Context())
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	asOf := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(quizDateLayout, raw, time.Local)
		if err != nil {
			log.Debug("malformed quiz date", slog.String("date", raw))
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Invalid date format, expected YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	cards, err := h.quizService.GetQuizCards(r.Context(), ownerID, asOf)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("quiz served",
		slog.String("owner_id", ownerID),
		slog.Int("cards", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// AnswerCard handles POST /quiz/{cardId}/answer requests. A successful
// answer returns 204 with no body.
func (h *QuizHandler) AnswerCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := shared.GetUserID(r.Context())
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	pathCardID := chi.URLParam(r, "cardId")
	cardID, err := uuid.Parse(pathCardID)
	if err != nil {
		log.Debug("invalid card ID format", slog.String("card_id", pathCardID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	var req AnswerCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsValid == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "isValid must be a boolean")
		return
	}

	if _, err := h.cardService.AnswerCard(r.Context(), cardID, *req.IsValid, ownerID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("answer recorded",
		slog.String("card_id", cardID.String()),
		slog.Bool("is_valid", *req.IsValid))
	w.WriteHeader(http.StatusNoContent)
}
