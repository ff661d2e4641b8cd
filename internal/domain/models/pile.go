package models

import (
	"time"
)

// Card is one flashcard inside a pile. Cards have no identity of their own;
// they live and die with the pile, ordered as stored.
type Card struct {
	Front    string  `json:"front"`
	Back     string  `json:"back"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Pile is a named, ordered collection of flashcards.
type Pile struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	FolderID  *string   `json:"folder_id" db:"folder_id"` // NULL = not in a folder
	Name      string    `json:"name" db:"name"`
	Cards     []Card    `json:"cards" db:"cards"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
