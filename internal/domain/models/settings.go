package models

import (
	"time"
)

// DefaultWeeklyGoal is the study goal (days per week) used before the user
// sets one.
const DefaultWeeklyGoal = 7

// UserSettings holds per-user study preferences.
type UserSettings struct {
	UserID     string    `json:"user_id" db:"user_id"`
	WeeklyGoal int       `json:"weekly_goal" db:"weekly_goal"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
