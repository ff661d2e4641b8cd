package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"
	"studydeck/internal/live"
	"studydeck/internal/sanitize"

	"github.com/google/uuid"
)

// UpdateTodoRequest edits a todo; nil fields are left alone.
type UpdateTodoRequest struct {
	UserID    string  `json:"-"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// TodoService owns the todo list. Every mutation is pushed to the owner's
// live watchers so open sessions mirror remote state.
type TodoService struct {
	todoRepo repositories.TodoRepository
	hub      *live.Hub
	logger   *slog.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo repositories.TodoRepository, hub *live.Hub, logger *slog.Logger) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		hub:      hub,
		logger:   logger,
	}
}

// ListTodos returns the user's todos, oldest first
func (s *TodoService) ListTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	return s.todoRepo.ListByUser(ctx, userID)
}

// CreateTodo adds an item and notifies watchers
func (s *TodoService) CreateTodo(ctx context.Context, userID, text string) (*models.Todo, error) {
	text = sanitize.Text(text)
	if text == "" || len(text) > config.MaxTodoTextLength {
		return nil, fmt.Errorf("%w: invalid todo text", domain.ErrValidation)
	}

	now := time.Now().UTC()
	todo := &models.Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	s.hub.Publish(userID, models.TodoEvent{Type: models.TodoCreated, Todo: todo, ID: todo.ID})
	return todo, nil
}

// UpdateTodo edits text and/or toggles completion, then notifies watchers
func (s *TodoService) UpdateTodo(ctx context.Context, id string, req *UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.todoRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		text := sanitize.Text(*req.Text)
		if text == "" || len(text) > config.MaxTodoTextLength {
			return nil, fmt.Errorf("%w: invalid todo text", domain.ErrValidation)
		}
		todo.Text = text
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	todo.UpdatedAt = time.Now().UTC()

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.hub.Publish(req.UserID, models.TodoEvent{Type: models.TodoUpdated, Todo: todo, ID: todo.ID})
	return todo, nil
}

// DeleteTodo removes an item and notifies watchers
func (s *TodoService) DeleteTodo(ctx context.Context, id, userID string) error {
	if err := s.todoRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.hub.Publish(userID, models.TodoEvent{Type: models.TodoDeleted, ID: id})
	return nil
}

// Watch opens a live subscription on the user's todo list and returns the
// current list as the starting snapshot. The subscription is opened before
// the snapshot is read, so a mutation landing in between is delivered as an
// event rather than lost; clients upsert by id, so seeing it in both is
// harmless. The cancel function must be called when the watcher disconnects.
func (s *TodoService) Watch(ctx context.Context, userID string) ([]models.Todo, <-chan models.TodoEvent, func(), error) {
	events, cancel := s.hub.Subscribe(userID)

	todos, err := s.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return todos, events, cancel, nil
}
