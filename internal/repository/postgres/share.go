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

// PostgresShareRepository implements the ShareRepository interface over the
// global shares table. Recipient emails are stored lowercased so lookups are
// case-insensitive.
type PostgresShareRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewShareRepository creates a new share repository
func NewShareRepository(config *RepositoryConfig) repositories.ShareRepository {
	return &PostgresShareRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a share record
func (r *PostgresShareRepository) Create(ctx context.Context, share *models.Share) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, recipient_email, sharer_id, sharer_email, kind, name, cards, document, created_at)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`, r.tables.Shares)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		share.ID,
		share.RecipientEmail,
		share.SharerID,
		share.SharerEmail,
		share.Kind,
		share.Name,
		share.Cards,
		share.Document,
		share.CreatedAt,
	).Scan(&share.CreatedAt)

	if err != nil {
		return fmt.Errorf("create share: %w", err)
	}

	return nil
}

// GetByID retrieves a share record
func (r *PostgresShareRepository) GetByID(ctx context.Context, id string) (*models.Share, error) {
	query := fmt.Sprintf(`
		SELECT id, recipient_email, sharer_id, sharer_email, kind, name, cards, document, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Shares)

	var share models.Share
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&share.ID,
		&share.RecipientEmail,
		&share.SharerID,
		&share.SharerEmail,
		&share.Kind,
		&share.Name,
		&share.Cards,
		&share.Document,
		&share.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get share: %w", err)
	}

	return &share, nil
}

// ListByRecipient retrieves shares addressed to an email, newest first
func (r *PostgresShareRepository) ListByRecipient(ctx context.Context, email string) ([]models.Share, error) {
	query := fmt.Sprintf(`
		SELECT id, recipient_email, sharer_id, sharer_email, kind, name, cards, document, created_at
		FROM %s
		WHERE recipient_email = lower($1)
		ORDER BY created_at DESC
	`, r.tables.Shares)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}
	defer rows.Close()

	var shares []models.Share
	for rows.Next() {
		var share models.Share
		if err := rows.Scan(
			&share.ID,
			&share.RecipientEmail,
			&share.SharerID,
			&share.SharerEmail,
			&share.Kind,
			&share.Name,
			&share.Cards,
			&share.Document,
			&share.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan share: %w", err)
		}
		shares = append(shares, share)
	}

	return shares, rows.Err()
}

// Delete removes a share record
func (r *PostgresShareRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Shares)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete share: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
