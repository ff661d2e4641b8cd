package repositories

import (
	"context"

	"studydeck/internal/domain/models"
)

// ShareRepository defines data access for the global share table. Unlike the
// other repositories it is not scoped by owner: rows are addressed by
// recipient email until claimed or deleted.
type ShareRepository interface {
	// Create inserts a share record
	Create(ctx context.Context, share *models.Share) error

	// GetByID retrieves a share record
	GetByID(ctx context.Context, id string) (*models.Share, error)

	// ListByRecipient retrieves shares addressed to an email, newest first
	ListByRecipient(ctx context.Context, email string) ([]models.Share, error)

	// Delete removes a share record
	Delete(ctx context.Context, id string) error
}
