package models

import (
	"time"
)

// DateKey is the calendar-day format used to key statistics, one row per
// user per day.
const DateKey = "2006-01-02"

// Statistic is one calendar day of study results for a user. Repeated
// sessions on the same day are merged into the existing row.
type Statistic struct {
	UserID       string    `json:"user_id" db:"user_id"`
	Date         string    `json:"date" db:"date"` // DateKey format
	Percentage   float64   `json:"percentage" db:"percentage"`
	CardsStudied int       `json:"cards_studied" db:"cards_studied"`
	TotalCards   int       `json:"total_cards" db:"total_cards"`
	RecordedAt   time.Time `json:"recorded_at" db:"recorded_at"`
}

// MergeSession folds a finished review session into the day's statistic.
// The day percentage is the card-weighted average of all sessions: a session
// of n cards at p% merged into an existing (p1, n1) day yields
// (p1*n1 + p*n)/(n1+n). With no prior cards the result is exactly p.
func (s *Statistic) MergeSession(percentage float64, cards int, at time.Time) {
	newTotal := s.TotalCards + cards

	if s.TotalCards > 0 {
		s.Percentage = (s.Percentage*float64(s.TotalCards) + percentage*float64(cards)) / float64(newTotal)
	} else {
		s.Percentage = percentage
	}

	s.TotalCards = newTotal
	s.CardsStudied += cards
	s.RecordedAt = at
}
