package service

import (
	"context"

	"github.com/homestay/backend/internal/model"
	"github.com/homestay/backend/internal/repository"
)

// reviewServiceImpl is the production implementation of ReviewService.
type reviewServiceImpl struct {
	repo repository.ReviewRepository
}

// NewReviewService creates a ReviewService backed by the given repository.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewServiceImpl{repo: repo}
}

func (s *reviewServiceImpl) Submit(ctx context.Context, rev *model.Review) error {
	return s.repo.Save(ctx, rev)
}

func (s *reviewServiceImpl) List(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error) {
	return s.repo.List(ctx, opts)
}
