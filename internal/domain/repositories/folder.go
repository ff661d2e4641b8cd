package repositories

import (
	"context"

	"studydeck/internal/domain/models"
)

// FolderRepository defines data access operations for folders of both kinds
type FolderRepository interface {
	// Create creates a new folder
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder scoped to its owner
	GetByID(ctx context.Context, id, userID string) (*models.Folder, error)

	// ListByUser retrieves a user's folders of one kind
	ListByUser(ctx context.Context, userID string, kind models.FolderKind) ([]models.Folder, error)

	// Update persists a full folder row
	Update(ctx context.Context, folder *models.Folder) error

	// Delete removes a folder row (member cascade is the service's job)
	Delete(ctx context.Context, id, userID string) error
}
