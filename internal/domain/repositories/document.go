package repositories

import (
	"context"

	"studydeck/internal/domain/models"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create creates a new document
	Create(ctx context.Context, doc *models.Document) error

	// GetByID retrieves a document scoped to its owner
	GetByID(ctx context.Context, id, userID string) (*models.Document, error)

	// ListByUser retrieves all of a user's documents, newest first
	ListByUser(ctx context.Context, userID string) ([]models.Document, error)

	// Update persists a full document row
	Update(ctx context.Context, doc *models.Document) error

	// Delete removes a document
	Delete(ctx context.Context, id, userID string) error

	// DeleteByFolder removes every document in a folder (cascade on folder delete)
	DeleteByFolder(ctx context.Context, folderID, userID string) error
}

// DraftRepository defines data access for the per-document autosave slot
type DraftRepository interface {
	// Upsert writes the draft slot, replacing any previous autosave
	Upsert(ctx context.Context, draft *models.Draft) error

	// Get retrieves the draft for a document, ErrNotFound if none
	Get(ctx context.Context, userID, documentID string) (*models.Draft, error)

	// Delete discards the draft slot
	Delete(ctx context.Context, userID, documentID string) error
}
