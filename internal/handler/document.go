package handler

import (
	"log/slog"
	"net/http"

	"studydeck/internal/httputil"
	"studydeck/internal/service"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	docService   *service.DocumentService
	shareService *service.ShareService
	logger       *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService *service.DocumentService, shareService *service.ShareService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService:   docService,
		shareService: shareService,
		logger:       logger,
	}
}

// CreateDocument creates a new (possibly empty) document
// POST /api/documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req service.CreateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	doc, err := h.docService.CreateDocument(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// ListDocuments lists documents, optionally filtered by folder and title search
// GET /api/documents?folder_id=&q=
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	filter := folderFilterFromQuery(r)
	query := r.URL.Query().Get("q")

	docs, err := h.docService.ListDocuments(r.Context(), userID, filter, query)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}

// GetDocument loads a document by id
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	doc, err := h.docService.GetDocument(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// UpdateDocument performs a manual save
// PATCH /api/documents/{id}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	var req service.UpdateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	doc, err := h.docService.UpdateDocument(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// DeleteDocument removes a document
// DELETE /api/documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	if err := h.docService.DeleteDocument(r.Context(), id, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// draftRequest is the autosave payload
type draftRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SaveDraft writes the periodic autosave slot
// PUT /api/documents/{id}/draft
func (h *DocumentHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req draftRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.docService.SaveDraft(r.Context(), id, httputil.GetUserID(r), req.Title, req.Content)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, draft)
}

// GetDraft fetches the autosave slot
// GET /api/documents/{id}/draft
func (h *DocumentHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.docService.GetDraft(r.Context(), r.PathValue("id"), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, draft)
}

// DiscardDraft drops the autosave slot
// DELETE /api/documents/{id}/draft
func (h *DocumentHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.docService.DiscardDraft(r.Context(), r.PathValue("id"), httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ShareDocument copies the document into the global share table
// POST /api/documents/{id}/share
func (h *DocumentHandler) ShareDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req service.ShareRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)
	req.UserEmail = httputil.GetUserEmail(r)

	share, err := h.shareService.ShareDocument(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, share)
}

// folderFilterFromQuery reads the folder_id query parameter: absent = no
// filter, empty = items outside any folder, value = that folder.
func folderFilterFromQuery(r *http.Request) service.FolderFilter {
	values := r.URL.Query()
	if !values.Has("folder_id") {
		return service.FolderFilter{}
	}
	raw := values.Get("folder_id")
	if raw == "" {
		return service.FolderFilter{Selected: true}
	}
	return service.FolderFilter{Selected: true, FolderID: &raw}
}
