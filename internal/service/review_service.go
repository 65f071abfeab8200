package service

import (
	"context"

	"github.com/homestay/backend/internal/model"
)

// ReviewService defines the business logic for guest reviews.
type ReviewService interface {
	// Submit stores a new review. The rev.ID and CreatedAt will be
	// populated by the implementation.
	Submit(ctx context.Context, rev *model.Review) error

	// List returns reviews according to the given options, newest first.
	List(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error)
}
