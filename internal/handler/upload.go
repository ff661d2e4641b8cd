package handler

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"studydeck/internal/config"
	"studydeck/internal/httputil"
	"studydeck/internal/objectstore"

	"github.com/google/uuid"
)

// UploadHandler accepts image uploads for card faces and editor content
type UploadHandler struct {
	store  objectstore.Store
	logger *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store objectstore.Store, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// uploadResponse carries the stored object's public URL
type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage stores a multipart image under the caller's prefix and
// returns its URL. Only image content types are accepted.
// POST /api/uploads
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)

	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusRequestEntityTooLarge, "Upload exceeds size limit")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Missing image field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httputil.RespondError(w, http.StatusUnsupportedMediaType, "Only image uploads are accepted")
		return
	}

	key := "users/" + httputil.GetUserID(r) + "/" + uuid.NewString() + strings.ToLower(path.Ext(header.Filename))

	url, err := h.store.Upload(r.Context(), key, contentType, file)
	if err != nil {
		h.logger.Error("image upload failed", "key", key, "error", err)
		httputil.RespondError(w, http.StatusBadGateway, "Upload failed")
		return
	}

	h.logger.Info("image uploaded", "key", key, "size", header.Size)
	httputil.RespondJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
