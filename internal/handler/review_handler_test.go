package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/homestay/backend/internal/model"
)

type mockReviewService struct {
	submitFunc func(ctx context.Context, rev *model.Review) error
	listFunc   func(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error)
}

func (m *mockReviewService) Submit(ctx context.Context, rev *model.Review) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, rev)
	}
	rev.ID = "1"
	rev.CreatedAt = time.Now()
	return nil
}

func (m *mockReviewService) List(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func TestReviewSubmit_Success(t *testing.T) {
	h := NewReviewHandler(&mockReviewService{})

	body := `{"name":"Mia Chen","country":"Singapore","rating":5,"message":"Wonderful stay"}`
	req := httptest.NewRequest("POST", "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var rev model.Review
	if err := json.Unmarshal(rec.Body.Bytes(), &rev); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if rev.ID == "" {
		t.Error("expected populated id in response")
	}
}

func TestReviewSubmit_Validation(t *testing.T) {
	h := NewReviewHandler(&mockReviewService{})

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad json", `{`, "invalid_json"},
		{"missing name", `{"rating":4,"message":"hi"}`, "name_required"},
		{"rating zero", `{"name":"A","rating":0,"message":"hi"}`, "rating_out_of_range"},
		{"rating six", `{"name":"A","rating":6,"message":"hi"}`, "rating_out_of_range"},
		{"missing message", `{"name":"A","rating":3}`, "message_required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/reviews", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp map[string]string
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp["error"] != tt.wantErr {
				t.Errorf("expected error %q, got %q", tt.wantErr, resp["error"])
			}
		})
	}
}

func TestReviewList_EmptyReturnsArray(t *testing.T) {
	h := NewReviewHandler(&mockReviewService{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/reviews", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"reviews":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestReviewList_Pagination(t *testing.T) {
	var gotOpts model.ReviewListOptions
	h := NewReviewHandler(&mockReviewService{
		listFunc: func(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error) {
			gotOpts = opts
			return []*model.Review{{ID: "1", Name: "Tom", Rating: 4, Message: "Nice"}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/reviews?limit=5&offset=10", nil))

	if gotOpts.Limit != 5 || gotOpts.Offset != 10 {
		t.Errorf("expected limit=5 offset=10, got %+v", gotOpts)
	}

	// out-of-range limit falls back to the default
	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/reviews?limit=500", nil))
	if gotOpts.Limit != 20 {
		t.Errorf("expected default limit 20 for out-of-range value, got %d", gotOpts.Limit)
	}
}

func TestReviewList_ServiceError(t *testing.T) {
	h := NewReviewHandler(&mockReviewService{
		listFunc: func(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error) {
			return nil, errors.New("db down")
		},
	})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/reviews", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
