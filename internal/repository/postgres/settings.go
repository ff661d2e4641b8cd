package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSettingsRepository implements the SettingsRepository interface
type PostgresSettingsRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(config *RepositoryConfig) repositories.SettingsRepository {
	return &PostgresSettingsRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Get retrieves a user's settings
func (r *PostgresSettingsRepository) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	query := fmt.Sprintf(`
		SELECT user_id, weekly_goal, updated_at
		FROM %s
		WHERE user_id = $1
	`, r.tables.UserSettings)

	var settings models.UserSettings
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.WeeklyGoal,
		&settings.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("settings for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// Upsert writes a user's settings
func (r *PostgresSettingsRepository) Upsert(ctx context.Context, settings *models.UserSettings) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, weekly_goal, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET weekly_goal = EXCLUDED.weekly_goal, updated_at = EXCLUDED.updated_at
	`, r.tables.UserSettings)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query,
		settings.UserID,
		settings.WeeklyGoal,
		settings.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}
