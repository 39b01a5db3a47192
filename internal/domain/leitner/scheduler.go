// Package leitner implements the review-scheduling rules of the Leitner
// system: the per-box interval table, next-review-date arithmetic, and the
// due-card eligibility predicate.
//
// Everything in this package is pure computation over domain values; state
// transitions between boxes live on domain.Category itself.
package leitner

import (
	"time"

	"github.com/tbouvier/leitner-api/internal/domain"
)

// intervalDays maps each box to the number of calendar days until the next
// review. DONE maps to zero: finished cards are never scheduled again.
var intervalDays = map[domain.Category]int{
	domain.CategoryFirst:   1,
	domain.CategorySecond:  2,
	domain.CategoryThird:   4,
	domain.CategoryFourth:  8,
	domain.CategoryFifth:   16,
	domain.CategorySixth:   32,
	domain.CategorySeventh: 64,
	domain.CategoryDone:    0,
}

// IntervalDays returns the review interval, in calendar days, for the given box.
func IntervalDays(category domain.Category) int {
	return intervalDays[category]
}

// NextReviewDate returns from advanced by the box's interval in whole
// calendar days. The time-of-day component of from is preserved; the date
// is not truncated to midnight.
func NextReviewDate(category domain.Category, from time.Time) time.Time {
	return from.AddDate(0, 0, intervalDays[category])
}

// IsDue reports whether the card is eligible for review as of the given
// instant. A card is due when it has not reached DONE and its scheduled
// review date has arrived; the boundary instant itself counts as due.
func IsDue(card domain.Card, asOf time.Time) bool {
	if card.Category == domain.CategoryDone {
		return false
	}
	return !card.NextReviewDate.After(asOf)
}

// FilterDue returns the cards due as of the given instant, preserving the
// input order. DONE cards are never included.
func FilterDue(cards []domain.Card, asOf time.Time) []domain.Card {
	due := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if IsDue(card, asOf) {
			due = append(due, card)
		}
	}
	return due
}
