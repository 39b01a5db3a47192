package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tbouvier/leitner-api/internal/api/shared"
	"github.com/tbouvier/leitner-api/internal/platform/logger"
	"github.com/tbouvier/leitner-api/internal/service/card"
)

// CreateCardRequest represents the request body for creating a card.
type CreateCardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Tag      string `json:"tag,omitempty"`
}

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	cardService card.Service
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService card.Service, log *slog.Logger) *CardHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}
	return &CardHandler{
		cardService: cardService,
		logger:      log.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /cards requests.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := shared.GetUserID(r.Context())
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var req CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.cardService.CreateCard(r.Context(), req.Question, req.Answer, req.Tag, ownerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card created via API",
		slog.String("card_id", created.ID.String()),
		slog.String("owner_id", ownerID))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(created))
}

// GetCards handles GET /cards requests. The optional tags query parameter
// is a comma-separated list restricting the result to matching tags.
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := shared.GetUserID(r.Context())
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var tags []string
	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	cards, err := h.cardService.GetCards(r.Context(), ownerID, tags)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}
