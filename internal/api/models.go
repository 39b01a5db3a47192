package api

import "github.com/tbouvier/leitner-api/internal/domain"

// CardResponse is the client rendering of a card. Scheduling fields
// (next review date) are internal and deliberately not exposed.
type CardResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Tag      string `json:"tag,omitempty"`
	Category string `json:"category"`
}

// cardToResponse converts a domain card to its client rendering.
func cardToResponse(card domain.Card) CardResponse {
	return CardResponse{
		ID:       card.ID.String(),
		Question: card.Question,
		Answer:   card.Answer,
		Tag:      card.Tag,
		Category: card.Category.String(),
	}
}

// cardsToResponse converts a card list, always rendering a JSON array
// (never null) for empty lists.
func cardsToResponse(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, cardToResponse(card))
	}
	return out
}
