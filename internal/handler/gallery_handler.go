package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/homestay/backend/internal/storage"
)

const maxImageSize = 5 << 20 // 5 MB

const galleryPrefix = "gallery"

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// GalleryHandler handles gallery image uploads and listing.
type GalleryHandler struct {
	storage storage.Storage
}

// NewGalleryHandler creates a GalleryHandler over the given storage.
func NewGalleryHandler(store storage.Storage) *GalleryHandler {
	return &GalleryHandler{storage: store}
}

// List handles GET /api/gallery: public URLs of all gallery images.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	urls, err := h.storage.List(r.Context(), galleryPrefix)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if urls == nil {
		urls = []string{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"images": urls})
}

// Upload handles POST /api/admin/gallery (multipart form, field "image").
func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "image_required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported_type"})
		return
	}

	key := galleryPrefix + "/" + uuid.NewString() + ext
	url, err := h.storage.Save(r.Context(), key, file, contentType)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"url": url})
}
