package models

import (
	"time"
)

// Document is a rich-text note. Content is sanitized HTML produced by the
// client-side editor.
type Document struct {
	ID         string     `json:"id" db:"id"`
	UserID     string     `json:"user_id" db:"user_id"`
	FolderID   *string    `json:"folder_id" db:"folder_id"` // NULL = not in a folder
	Title      string     `json:"title" db:"title"`
	Content    string     `json:"content" db:"content"`
	Background *string    `json:"background,omitempty" db:"background"` // Catalog background name
	LastSaved  *time.Time `json:"last_saved,omitempty" db:"last_saved"` // Set on manual save only
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
