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

// PostgresDraftRepository implements the DraftRepository interface
type PostgresDraftRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDraftRepository creates a new draft repository
func NewDraftRepository(config *RepositoryConfig) repositories.DraftRepository {
	return &PostgresDraftRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Upsert writes the draft slot, replacing any previous autosave
func (r *PostgresDraftRepository) Upsert(ctx context.Context, draft *models.Draft) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, document_id, title, content, saved_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, document_id)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, saved_at = EXCLUDED.saved_at
	`, r.tables.Drafts)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query,
		draft.UserID,
		draft.DocumentID,
		draft.Title,
		draft.Content,
		draft.SavedAt,
	); err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}

	return nil
}

// Get retrieves the draft for a document
func (r *PostgresDraftRepository) Get(ctx context.Context, userID, documentID string) (*models.Draft, error) {
	query := fmt.Sprintf(`
		SELECT user_id, document_id, title, content, saved_at
		FROM %s
		WHERE user_id = $1 AND document_id = $2
	`, r.tables.Drafts)

	var draft models.Draft
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID, documentID).Scan(
		&draft.UserID,
		&draft.DocumentID,
		&draft.Title,
		&draft.Content,
		&draft.SavedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("draft for document %s: %w", documentID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	return &draft, nil
}

// Delete discards the draft slot
func (r *PostgresDraftRepository) Delete(ctx context.Context, userID, documentID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND document_id = $2`, r.tables.Drafts)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, userID, documentID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}

	return nil
}
