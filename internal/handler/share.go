package handler

import (
	"log/slog"
	"net/http"

	"studydeck/internal/httputil"
	"studydeck/internal/service"
)

// ShareHandler handles the recipient side of sharing: the inbox, claims,
// and declines. Creating shares lives on the pile and document handlers.
type ShareHandler struct {
	shareService *service.ShareService
	logger       *slog.Logger
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareService *service.ShareService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		logger:       logger,
	}
}

// ListShares returns shares addressed to the caller's email
// GET /api/shared
func (h *ShareHandler) ListShares(w http.ResponseWriter, r *http.Request) {
	shares, err := h.shareService.ListShares(r.Context(), httputil.GetUserEmail(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, shares)
}

// ClaimShare copies a share into the caller's collection and removes it
// POST /api/shared/{id}/claim
func (h *ShareHandler) ClaimShare(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Share ID is required")
		return
	}

	result, err := h.shareService.Claim(r.Context(), id, httputil.GetUserID(r), httputil.GetUserEmail(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// DeclineShare removes a share without claiming it
// DELETE /api/shared/{id}
func (h *ShareHandler) DeclineShare(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Share ID is required")
		return
	}

	if err := h.shareService.Decline(r.Context(), id, httputil.GetUserEmail(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
