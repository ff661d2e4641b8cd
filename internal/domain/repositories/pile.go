package repositories

import (
	"context"

	"studydeck/internal/domain/models"
)

// PileRepository defines data access operations for flashcard piles
type PileRepository interface {
	// Create creates a new pile
	Create(ctx context.Context, pile *models.Pile) error

	// GetByID retrieves a pile scoped to its owner
	GetByID(ctx context.Context, id, userID string) (*models.Pile, error)

	// ListByUser retrieves all of a user's piles, newest first
	ListByUser(ctx context.Context, userID string) ([]models.Pile, error)

	// Update persists a full pile row
	Update(ctx context.Context, pile *models.Pile) error

	// Delete removes a pile
	Delete(ctx context.Context, id, userID string) error

	// DeleteByFolder removes every pile in a folder (cascade on folder delete)
	DeleteByFolder(ctx context.Context, folderID, userID string) error
}
