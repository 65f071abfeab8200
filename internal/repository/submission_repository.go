package repository

import (
	"context"

	"github.com/homestay/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	// Save inserts a new submission. ID and timestamps are populated by the
	// store on return.
	Save(ctx context.Context, sub *model.Submission) error

	// ListAll returns every submission, newest first.
	ListAll(ctx context.Context) ([]*model.Submission, error)

	// FindByID returns a single submission or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Submission, error)

	// UpdateStatus changes the status of a submission. Returns ErrNotFound
	// if no row matches.
	UpdateStatus(ctx context.Context, id, status string) error
}
