package repositories

import (
	"context"

	"studydeck/internal/domain/models"
)

// TodoRepository defines data access operations for todo items
type TodoRepository interface {
	// Create creates a new todo
	Create(ctx context.Context, todo *models.Todo) error

	// GetByID retrieves a todo scoped to its owner
	GetByID(ctx context.Context, id, userID string) (*models.Todo, error)

	// ListByUser retrieves all of a user's todos, oldest first
	ListByUser(ctx context.Context, userID string) ([]models.Todo, error)

	// Update persists a full todo row
	Update(ctx context.Context, todo *models.Todo) error

	// Delete removes a todo
	Delete(ctx context.Context, id, userID string) error
}
