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

// PostgresPileRepository implements the PileRepository interface.
// Cards are stored as a single JSONB value; a pile is always written and
// read as one unit. Card edits replace the whole array.
type PostgresPileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewPileRepository creates a new pile repository
func NewPileRepository(config *RepositoryConfig) repositories.PileRepository {
	return &PostgresPileRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new pile
func (r *PostgresPileRepository) Create(ctx context.Context, pile *models.Pile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, folder_id, name, cards, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, r.tables.Piles)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		pile.ID,
		pile.UserID,
		pile.FolderID,
		pile.Name,
		pile.Cards,
		pile.CreatedAt,
		pile.UpdatedAt,
	).Scan(&pile.CreatedAt, &pile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create pile: %w", err)
	}

	return nil
}

// GetByID retrieves a pile scoped to its owner
func (r *PostgresPileRepository) GetByID(ctx context.Context, id, userID string) (*models.Pile, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, folder_id, name, cards, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Piles)

	var pile models.Pile
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&pile.ID,
		&pile.UserID,
		&pile.FolderID,
		&pile.Name,
		&pile.Cards,
		&pile.CreatedAt,
		&pile.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("pile %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get pile: %w", err)
	}

	return &pile, nil
}

// ListByUser retrieves all of a user's piles, newest first
func (r *PostgresPileRepository) ListByUser(ctx context.Context, userID string) ([]models.Pile, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, folder_id, name, cards, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.tables.Piles)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list piles: %w", err)
	}
	defer rows.Close()

	var piles []models.Pile
	for rows.Next() {
		var pile models.Pile
		if err := rows.Scan(
			&pile.ID,
			&pile.UserID,
			&pile.FolderID,
			&pile.Name,
			&pile.Cards,
			&pile.CreatedAt,
			&pile.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pile: %w", err)
		}
		piles = append(piles, pile)
	}

	return piles, rows.Err()
}

// Update persists a full pile row
func (r *PostgresPileRepository) Update(ctx context.Context, pile *models.Pile) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $3, name = $4, cards = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
	`, r.tables.Piles)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		pile.ID,
		pile.UserID,
		pile.FolderID,
		pile.Name,
		pile.Cards,
		pile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pile %s: %w", pile.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a pile
func (r *PostgresPileRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.tables.Piles)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete pile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pile %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByFolder removes every pile in a folder
func (r *PostgresPileRepository) DeleteByFolder(ctx context.Context, folderID, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE folder_id = $1 AND user_id = $2`, r.tables.Piles)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, folderID, userID); err != nil {
		return fmt.Errorf("delete piles by folder: %w", err)
	}

	return nil
}
