package handler

import (
	"net/http"

	"studydeck/internal/catalog"
	"studydeck/internal/httputil"
)

// CatalogHandler serves the static UI catalogs
type CatalogHandler struct {
	registry *catalog.Registry
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(registry *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{registry: registry}
}

// ListColors returns the folder color palette
// GET /api/catalog/colors
func (h *CatalogHandler) ListColors(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.registry.Colors())
}

// ListBackgrounds returns the editor background options
// GET /api/catalog/backgrounds
func (h *CatalogHandler) ListBackgrounds(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.registry.Backgrounds())
}
