package quiz

import (
	"sync"
	"time"
)

// DailyGate tracks, per user, the most recent recorded quiz session and
// answers whether a user has already run a quiz on a given calendar day.
//
// The gate is the only state shared across concurrent requests in the
// core; a single mutex over the map keeps concurrent HasQuizToday and
// RecordQuiz calls consistent. State lives for the process lifetime only.
// Construct the gate once and inject it; it is never package-level state.
type DailyGate struct {
	mu            sync.Mutex
	lastQuizDates map[string]time.Time
}

// NewDailyGate creates an empty gate.
func NewDailyGate() *DailyGate {
	return &DailyGate{
		lastQuizDates: make(map[string]time.Time),
	}
}

// HasQuizToday reports whether a quiz was recorded for the user on the
// same local calendar day as asOf. The comparison is by calendar day
// (year, month, day), not elapsed time: a session recorded at 08:00
// still gates a query at 23:59 the same day, and never gates the next day.
func (g *DailyGate) HasQuizToday(userID string, asOf time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	last, ok := g.lastQuizDates[userID]
	if !ok {
		return false
	}
	return sameCalendarDay(last, asOf)
}

// RecordQuiz stores asOf as the user's most recent quiz session,
// overwriting any prior record.
func (g *DailyGate) RecordQuiz(userID string, asOf time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastQuizDates[userID] = asOf
}

// Reset clears all records. Administrative and test use only.
func (g *DailyGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastQuizDates = make(map[string]time.Time)
}

// sameCalendarDay reports whether both instants fall on the same local
// calendar day.
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
