package models

import (
	"time"
)

// FolderKind distinguishes the two parallel grouping namespaces: folders for
// flashcard piles and folders for documents. A pile never references a
// document folder and vice versa.
type FolderKind string

const (
	FolderKindPile     FolderKind = "pile"
	FolderKindDocument FolderKind = "document"
)

// Valid reports whether k is one of the known folder kinds.
func (k FolderKind) Valid() bool {
	return k == FolderKindPile || k == FolderKindDocument
}

// Folder is a grouping label with display colors. It enforces nothing about
// its members; membership lives on the document/pile as a nullable folder_id.
type Folder struct {
	ID         string     `json:"id" db:"id"`
	UserID     string     `json:"user_id" db:"user_id"`
	Kind       FolderKind `json:"kind" db:"kind"`
	Name       string     `json:"name" db:"name"`
	ColorLight string     `json:"color_light" db:"color_light"`
	ColorDark  string     `json:"color_dark" db:"color_dark"`
	TextColor  string     `json:"text_color" db:"text_color"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
