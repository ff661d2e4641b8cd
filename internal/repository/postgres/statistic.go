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

// statisticColumns is the select list shared by the read queries. The date
// column is cast to text: in the binary result format the pool's exec modes
// request, pgx cannot scan a bare DATE into the string Date field.
const statisticColumns = "user_id, date::text, percentage, cards_studied, total_cards, recorded_at"

// PostgresStatisticRepository implements the StatisticRepository interface
type PostgresStatisticRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewStatisticRepository creates a new statistic repository
func NewStatisticRepository(config *RepositoryConfig) repositories.StatisticRepository {
	return &PostgresStatisticRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// GetByDate retrieves the statistic for one day
func (r *PostgresStatisticRepository) GetByDate(ctx context.Context, userID, date string) (*models.Statistic, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND date = $2
	`, statisticColumns, r.tables.Statistics)

	var stat models.Statistic
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID, date).Scan(
		&stat.UserID,
		&stat.Date,
		&stat.Percentage,
		&stat.CardsStudied,
		&stat.TotalCards,
		&stat.RecordedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("statistic for %s: %w", date, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get statistic: %w", err)
	}

	return &stat, nil
}

// ListByUser retrieves all of a user's statistics ordered by date ascending
func (r *PostgresStatisticRepository) ListByUser(ctx context.Context, userID string) ([]models.Statistic, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY date ASC
	`, statisticColumns, r.tables.Statistics)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	defer rows.Close()

	var stats []models.Statistic
	for rows.Next() {
		var stat models.Statistic
		if err := rows.Scan(
			&stat.UserID,
			&stat.Date,
			&stat.Percentage,
			&stat.CardsStudied,
			&stat.TotalCards,
			&stat.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan statistic: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

// Upsert inserts or replaces the day's row. The row is keyed by user+date,
// so two sessions on the same day land on the same row.
func (r *PostgresStatisticRepository) Upsert(ctx context.Context, stat *models.Statistic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, date, percentage, cards_studied, total_cards, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date)
		DO UPDATE SET percentage = EXCLUDED.percentage,
		              cards_studied = EXCLUDED.cards_studied,
		              total_cards = EXCLUDED.total_cards,
		              recorded_at = EXCLUDED.recorded_at
	`, r.tables.Statistics)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query,
		stat.UserID,
		stat.Date,
		stat.Percentage,
		stat.CardsStudied,
		stat.TotalCards,
		stat.RecordedAt,
	); err != nil {
		return fmt.Errorf("upsert statistic: %w", err)
	}

	return nil
}
