package handler

import (
	"log/slog"
	"net/http"

	"studydeck/internal/httputil"
	"studydeck/internal/service"
)

// PileHandler handles flashcard pile HTTP requests
type PileHandler struct {
	pileService  *service.PileService
	shareService *service.ShareService
	logger       *slog.Logger
}

// NewPileHandler creates a new pile handler
func NewPileHandler(pileService *service.PileService, shareService *service.ShareService, logger *slog.Logger) *PileHandler {
	return &PileHandler{
		pileService:  pileService,
		shareService: shareService,
		logger:       logger,
	}
}

// CreatePile creates a pile from the creator flow
// POST /api/piles
func (h *PileHandler) CreatePile(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	pile, err := h.pileService.CreatePile(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, pile)
}

// ListPiles lists piles, optionally filtered by folder and name search
// GET /api/piles?folder_id=&q=
func (h *PileHandler) ListPiles(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	filter := folderFilterFromQuery(r)
	query := r.URL.Query().Get("q")

	piles, err := h.pileService.ListPiles(r.Context(), userID, filter, query)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, piles)
}

// GetPile loads a pile by id
// GET /api/piles/{id}
func (h *PileHandler) GetPile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Pile ID is required")
		return
	}

	pile, err := h.pileService.GetPile(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, pile)
}

// UpdatePile edits a pile (rename, card edits, folder move)
// PATCH /api/piles/{id}
func (h *PileHandler) UpdatePile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Pile ID is required")
		return
	}

	var req service.UpdatePileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	pile, err := h.pileService.UpdatePile(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, pile)
}

// DeletePile removes a pile
// DELETE /api/piles/{id}
func (h *PileHandler) DeletePile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Pile ID is required")
		return
	}

	if err := h.pileService.DeletePile(r.Context(), id, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Review records a finished training session
// POST /api/piles/{id}/review
func (h *PileHandler) Review(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req service.ReviewRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	result, err := h.pileService.Review(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// SharePile copies the pile into the global share table
// POST /api/piles/{id}/share
func (h *PileHandler) SharePile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req service.ShareRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)
	req.UserEmail = httputil.GetUserEmail(r)

	share, err := h.shareService.SharePile(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, share)
}
