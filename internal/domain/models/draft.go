package models

import (
	"time"
)

// Draft is the periodic-autosave copy of a document's editor state. One slot
// per user per document, overwritten on every autosave. A draft is never
// applied to the document automatically; clients compare SavedAt against the
// document's LastSaved and decide.
type Draft struct {
	UserID     string    `json:"user_id" db:"user_id"`
	DocumentID string    `json:"document_id" db:"document_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	SavedAt    time.Time `json:"saved_at" db:"saved_at"`
}
