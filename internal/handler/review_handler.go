package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/homestay/backend/internal/model"
	"github.com/homestay/backend/internal/service"
)

const maxReviewLength = 2000

// ReviewHandler handles guest review submission and listing.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a ReviewHandler with the given service.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type reviewRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// Submit handles POST /api/reviews.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "rating_out_of_range"})
		return
	}
	if req.Message == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_required"})
		return
	}
	if len([]rune(req.Message)) > maxReviewLength {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_too_long"})
		return
	}

	rev := &model.Review{
		Name:    req.Name,
		Country: req.Country,
		Rating:  req.Rating,
		Message: req.Message,
	}

	if err := h.reviewService.Submit(r.Context(), rev); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rev)
}

// List handles GET /api/reviews.
// Supports query params: limit (default 20, max 100), offset.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	opts := model.ReviewListOptions{Limit: 20, Offset: 0}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	reviews, err := h.reviewService.List(r.Context(), opts)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if reviews == nil {
		reviews = []*model.Review{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"reviews": reviews})
}
