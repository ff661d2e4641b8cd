package repositories

import (
	"context"

	"studydeck/internal/domain/models"
)

// StatisticRepository defines data access operations for daily study
// statistics. Rows are uniquely keyed by user+date.
type StatisticRepository interface {
	// GetByDate retrieves the statistic for one day, ErrNotFound if none
	GetByDate(ctx context.Context, userID, date string) (*models.Statistic, error)

	// ListByUser retrieves all of a user's statistics ordered by date ascending
	ListByUser(ctx context.Context, userID string) ([]models.Statistic, error)

	// Upsert inserts or replaces the day's row
	Upsert(ctx context.Context, stat *models.Statistic) error
}

// SettingsRepository defines data access for per-user study preferences
type SettingsRepository interface {
	// Get retrieves a user's settings, ErrNotFound if never saved
	Get(ctx context.Context, userID string) (*models.UserSettings, error)

	// Upsert writes a user's settings
	Upsert(ctx context.Context, settings *models.UserSettings) error
}
