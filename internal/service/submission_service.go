package service

import (
	"context"

	"github.com/homestay/backend/internal/model"
)

// SubmissionService defines the business logic for public contact form
// submissions.
type SubmissionService interface {
	// Submit stores a new submission with status "new". The sub.ID and
	// timestamps will be populated by the implementation.
	Submit(ctx context.Context, sub *model.Submission) error
}
