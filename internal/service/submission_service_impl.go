package service

import (
	"context"
	"time"

	"github.com/homestay/backend/internal/model"
	"github.com/homestay/backend/internal/repository"
)

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService backed by the given repository.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{repo: repo}
}

// Submit stores a new submission. It forces the status to "new" and
// populates CreatedAt/UpdatedAt before persisting; the store overwrites
// both timestamps with its own clock on insert.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.Submission) error {
	now := time.Now().UTC()
	sub.Status = model.StatusNew
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return s.repo.Save(ctx, sub)
}
