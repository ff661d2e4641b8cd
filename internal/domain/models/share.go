package models

import (
	"strings"
	"time"
)

// ShareKind identifies what a share record carries.
type ShareKind string

const (
	ShareKindPile     ShareKind = "pile"
	ShareKindDocument ShareKind = "document"
)

// SharedDocument is the detached document payload inside a share record.
type SharedDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Share is a detached copy of a pile or document, addressed to a recipient
// by email. It lives in a global table (not scoped to a user) until the
// recipient claims or deletes it. The copy carries no reference back to the
// source; later edits to the original do not propagate.
type Share struct {
	ID             string          `json:"id" db:"id"`
	RecipientEmail string          `json:"recipient_email" db:"recipient_email"`
	SharerID       string          `json:"sharer_id" db:"sharer_id"`
	SharerEmail    string          `json:"sharer_email" db:"sharer_email"`
	Kind           ShareKind       `json:"kind" db:"kind"`
	Name           string          `json:"name" db:"name"`
	Cards          []Card          `json:"cards,omitempty" db:"cards"`       // Set when Kind == pile
	Document       *SharedDocument `json:"document,omitempty" db:"document"` // Set when Kind == document
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// AddressedTo reports whether the share is meant for the given email.
// Addresses compare case-insensitively.
func (s *Share) AddressedTo(email string) bool {
	return strings.EqualFold(s.RecipientEmail, email)
}
