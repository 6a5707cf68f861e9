package http

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"greenhire-backend/internal/storage"
)

// ImageHandler serves uploaded machine images when the mock storage backend
// is active. With the Cloud Storage backend, images are served by the bucket
// directly and these routes are not registered.
type ImageHandler struct {
	store storage.StorageInterface
}

func NewImageHandler(store storage.StorageInterface) *ImageHandler {
	return &ImageHandler{store: store}
}

func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		http.Error(w, "Missing image key", http.StatusBadRequest)
		return
	}

	file, err := h.store.ReadFile(r.Context(), key)
	if err != nil {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", storage.ContentTypeForKey(key))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.Copy(w, file)
}
