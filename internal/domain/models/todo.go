package models

import (
	"time"
)

// Todo is a single checklist item.
type Todo struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TodoEventType identifies a change pushed to live watchers.
type TodoEventType string

const (
	TodoCreated TodoEventType = "created"
	TodoUpdated TodoEventType = "updated"
	TodoDeleted TodoEventType = "deleted"
)

// TodoEvent is one change notification on a user's todo list. Watchers
// receive these over the websocket feed so the UI can mirror remote state
// without polling.
type TodoEvent struct {
	Type TodoEventType `json:"type"`
	Todo *Todo         `json:"todo,omitempty"` // nil for deletes
	ID   string        `json:"id"`
}
