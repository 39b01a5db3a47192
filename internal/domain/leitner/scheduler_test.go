package leitner

import (
	"testing"
	"time"

	"github.com/tbouvier/leitner-api/internal/domain"
)

func TestNextReviewDateAdvancesByIntervalDays(t *testing.T) {
	t.Parallel() // Enable parallel execution

	from := time.Date(2024, 3, 10, 14, 45, 30, 0, time.UTC)

	testCases := []struct {
		category domain.Category
		days     int
	}{
		{domain.CategoryFirst, 1},
		{domain.CategorySecond, 2},
		{domain.CategoryThird, 4},
		{domain.CategoryFourth, 8},
		{domain.CategoryFifth, 16},
		{domain.CategorySixth, 32},
		{domain.CategorySeventh, 64},
		{domain.CategoryDone, 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.category), func(t *testing.T) {
			t.Parallel()
			got := NextReviewDate(tc.category, from)
			expected := from.AddDate(0, 0, tc.days)
			if !got.Equal(expected) {
				t.Errorf("NextReviewDate(%v) = %v, expected %v", tc.category, got, expected)
			}
		})
	}
}

func TestNextReviewDatePreservesTimeOfDay(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	got := NextReviewDate(domain.CategoryFirst, from)

	if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("Expected time-of-day preserved, got %v", got)
	}
	if got.Day() != 11 {
		t.Errorf("Expected next calendar day, got %v", got)
	}
}

func TestIsDue(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	card := func(category domain.Category, next time.Time) domain.Card {
		c, err := domain.NewCard("Q", "A", "", "user-1", next)
		if err != nil {
			t.Fatalf("NewCard: %v", err)
		}
		return c.WithReview(category, next)
	}

	testCases := []struct {
		name     string
		card     domain.Card
		expected bool
	}{
		{"past review date is due", card(domain.CategoryFirst, asOf.AddDate(0, 0, -1)), true},
		{"boundary instant is due", card(domain.CategorySecond, asOf), true},
		{"future review date is not due", card(domain.CategoryThird, asOf.Add(time.Second)), false},
		{"DONE card is never due", card(domain.CategoryDone, asOf.AddDate(0, 0, -30)), false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsDue(tc.card, asOf); got != tc.expected {
				t.Errorf("IsDue = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIsDueMonotonicInTime(t *testing.T) {
	t.Parallel()

	next := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	c, err := domain.NewCard("Q", "A", "", "user-1", next)
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}

	// Once due, a non-DONE card stays due at every later instant.
	for _, offset := range []time.Duration{0, time.Minute, 24 * time.Hour, 365 * 24 * time.Hour} {
		if !IsDue(c, next.Add(offset)) {
			t.Errorf("Expected card due at next+%v", offset)
		}
	}
}

func TestFilterDue(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	mk := func(question string, category domain.Category, next time.Time) domain.Card {
		c, err := domain.NewCard(question, "A", "", "user-1", next)
		if err != nil {
			t.Fatalf("NewCard: %v", err)
		}
		return c.WithReview(category, next)
	}

	due1 := mk("due1", domain.CategoryFirst, asOf.AddDate(0, 0, -2))
	notDue := mk("notDue", domain.CategorySecond, asOf.AddDate(0, 0, 1))
	done := mk("done", domain.CategoryDone, asOf.AddDate(0, 0, -10))
	due2 := mk("due2", domain.CategoryFifth, asOf)

	got := FilterDue([]domain.Card{due1, notDue, done, due2}, asOf)

	if len(got) != 2 {
		t.Fatalf("Expected 2 due cards, got %d", len(got))
	}
	// Order-preserving filter.
	if got[0].Question != "due1" || got[1].Question != "due2" {
		t.Errorf("Expected [due1 due2], got [%s %s]", got[0].Question, got[1].Question)
	}

	if got := FilterDue(nil, asOf); len(got) != 0 {
		t.Errorf("Expected empty result for empty input, got %d cards", len(got))
	}
}
