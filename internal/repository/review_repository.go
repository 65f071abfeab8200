package repository

import (
	"context"

	"github.com/homestay/backend/internal/model"
)

// ReviewRepository defines the persistence interface for guest reviews.
type ReviewRepository interface {
	Save(ctx context.Context, rev *model.Review) error
	List(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error)
}
