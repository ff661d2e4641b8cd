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

// PostgresTodoRepository implements the TodoRepository interface
type PostgresTodoRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(config *RepositoryConfig) repositories.TodoRepository {
	return &PostgresTodoRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new todo
func (r *PostgresTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, text, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, r.tables.Todos)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		todo.ID,
		todo.UserID,
		todo.Text,
		todo.Completed,
		todo.CreatedAt,
		todo.UpdatedAt,
	).Scan(&todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	return nil
}

// GetByID retrieves a todo scoped to its owner
func (r *PostgresTodoRepository) GetByID(ctx context.Context, id, userID string) (*models.Todo, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, text, completed, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Todos)

	var todo models.Todo
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Text,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}

	return &todo, nil
}

// ListByUser retrieves all of a user's todos, oldest first
func (r *PostgresTodoRepository) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, text, completed, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, r.tables.Todos)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.Text,
			&todo.Completed,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// Update persists a full todo row
func (r *PostgresTodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET text = $3, completed = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
	`, r.tables.Todos)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		todo.ID,
		todo.UserID,
		todo.Text,
		todo.Completed,
		todo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", todo.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a todo
func (r *PostgresTodoRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.tables.Todos)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
