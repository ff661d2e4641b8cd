package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"studydeck/internal/catalog"
	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"
	"studydeck/internal/httputil"
	"studydeck/internal/sanitize"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateDocumentRequest carries a new document's fields. Everything is
// optional: "new document" creates an empty untitled note.
type CreateDocumentRequest struct {
	UserID   string  `json:"-"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	FolderID *string `json:"folder_id"`
}

// UpdateDocumentRequest is the manual-save payload. FolderID and Background
// are tri-state: absent leaves the field alone, null clears it.
type UpdateDocumentRequest struct {
	UserID     string                  `json:"-"`
	Title      *string                 `json:"title"`
	Content    *string                 `json:"content"`
	FolderID   httputil.OptionalString `json:"folder_id"`
	Background httputil.OptionalString `json:"background"`
}

// FolderFilter selects documents/piles by folder membership.
// Zero value = no filtering. Selected with a nil FolderID = items outside
// any folder.
type FolderFilter struct {
	Selected bool
	FolderID *string
}

// Matches reports whether an item with the given folder reference passes
// the filter.
func (f FolderFilter) Matches(folderID *string) bool {
	if !f.Selected {
		return true
	}
	if f.FolderID == nil {
		return folderID == nil
	}
	return folderID != nil && *folderID == *f.FolderID
}

// DocumentService owns document and draft lifecycle
type DocumentService struct {
	docRepo   repositories.DocumentRepository
	draftRepo repositories.DraftRepository
	catalog   *catalog.Registry
	logger    *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	draftRepo repositories.DraftRepository,
	registry *catalog.Registry,
	logger *slog.Logger,
) *DocumentService {
	return &DocumentService{
		docRepo:   docRepo,
		draftRepo: draftRepo,
		catalog:   registry,
		logger:    logger,
	}
}

// CreateDocument creates a new document
func (s *DocumentService) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*models.Document, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Length(0, config.MaxDocumentTitleLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now().UTC()
	doc := &models.Document{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		FolderID:  normalizeFolderID(req.FolderID),
		Title:     sanitize.Text(req.Title),
		Content:   sanitize.HTML(req.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Debug("document created", "id", doc.ID, "user_id", doc.UserID)
	return doc, nil
}

// GetDocument loads a document by id
func (s *DocumentService) GetDocument(ctx context.Context, id, userID string) (*models.Document, error) {
	return s.docRepo.GetByID(ctx, id, userID)
}

// ListDocuments returns the user's documents, filtered by folder membership
// and title search. Filtering happens over the fetched list, matching the
// original client-side behavior (case-insensitive substring on titles).
func (s *DocumentService) ListDocuments(ctx context.Context, userID string, filter FolderFilter, query string) ([]models.Document, error) {
	docs, err := s.docRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Document, 0, len(docs))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, doc := range docs {
		if !filter.Matches(doc.FolderID) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(doc.Title), needle) {
			continue
		}
		filtered = append(filtered, doc)
	}

	return filtered, nil
}

// UpdateDocument performs a manual save: only provided fields change, and
// last_saved is stamped. Last write wins; there is no version check.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, req *UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := sanitize.Text(*req.Title)
		if len(title) > config.MaxDocumentTitleLength {
			return nil, fmt.Errorf("%w: title too long", domain.ErrValidation)
		}
		doc.Title = title
	}
	if req.Content != nil {
		doc.Content = sanitize.HTML(*req.Content)
	}
	if req.FolderID.Present {
		doc.FolderID = normalizeFolderID(req.FolderID.Value)
	}
	if req.Background.Present {
		if req.Background.Value == nil || *req.Background.Value == "" {
			doc.Background = nil
		} else {
			if !s.catalog.HasBackground(*req.Background.Value) {
				return nil, fmt.Errorf("%w: unknown background %q", domain.ErrValidation, *req.Background.Value)
			}
			doc.Background = req.Background.Value
		}
	}

	now := time.Now().UTC()
	doc.LastSaved = &now
	doc.UpdatedAt = now

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument removes a document and its draft slot
func (s *DocumentService) DeleteDocument(ctx context.Context, id, userID string) error {
	if err := s.docRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	// Draft is best-effort cleanup; a dangling draft row is harmless
	if err := s.draftRepo.Delete(ctx, userID, id); err != nil {
		s.logger.Warn("failed to delete draft after document delete", "document_id", id, "error", err)
	}
	return nil
}

// SaveDraft writes the periodic-autosave slot for a document. The document
// itself is untouched; drafts are a redundant copy clients reconcile against
// last_saved on load.
func (s *DocumentService) SaveDraft(ctx context.Context, documentID, userID, title, content string) (*models.Draft, error) {
	// The document must exist and belong to the user
	if _, err := s.docRepo.GetByID(ctx, documentID, userID); err != nil {
		return nil, err
	}

	draft := &models.Draft{
		UserID:     userID,
		DocumentID: documentID,
		Title:      sanitize.Text(title),
		Content:    sanitize.HTML(content),
		SavedAt:    time.Now().UTC(),
	}

	if err := s.draftRepo.Upsert(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// GetDraft fetches the autosave slot, ErrNotFound if none exists
func (s *DocumentService) GetDraft(ctx context.Context, documentID, userID string) (*models.Draft, error) {
	return s.draftRepo.Get(ctx, userID, documentID)
}

// DiscardDraft drops the autosave slot after the client reconciled it
func (s *DocumentService) DiscardDraft(ctx context.Context, documentID, userID string) error {
	return s.draftRepo.Delete(ctx, userID, documentID)
}

// normalizeFolderID maps empty string to nil so "no folder" is stored one way
func normalizeFolderID(folderID *string) *string {
	if folderID != nil && *folderID == "" {
		return nil
	}
	return folderID
}
