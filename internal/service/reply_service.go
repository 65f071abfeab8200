package service

import (
	"context"
	"errors"

	"github.com/homestay/backend/internal/model"
)

// ErrDraftIncomplete is returned by Send when the draft subject or body is
// empty after trimming whitespace.
var ErrDraftIncomplete = errors.New("reply subject and body are required")

// ErrMarkReplied is returned by Send when the email was dispatched but the
// status write to the store failed. The reply went out; the dashboard is
// behind until the operator retries the status change or refreshes.
var ErrMarkReplied = errors.New("reply sent but status update failed")

// ReplyDraft is an ephemeral reply being composed for one submission.
// It is never persisted; it lives for the duration of the composer.
type ReplyDraft struct {
	SubmissionID string `json:"submission_id"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	TemplateName string `json:"template_name"` // "welcome" | "custom"
}

// StatusUpdater marks a submission replied after a successful dispatch.
// Satisfied by dashboard.View so the in-memory admin view stays in sync
// with the store.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

// ReplyService orchestrates the reply-to-a-submission workflow:
// compose (via template) → validate → dispatch → mark replied.
type ReplyService interface {
	// OpenReply creates a fresh draft for the submission, prefilled from
	// the "custom" template.
	OpenReply(sub *model.Submission) ReplyDraft

	// ApplyTemplate re-renders the draft from the named template,
	// discarding any operator edits.
	ApplyTemplate(sub *model.Submission, name string) ReplyDraft

	// Send validates and dispatches the draft, then marks the submission
	// replied. The submission status changes if and only if the dispatch
	// succeeded. Returns ErrDraftIncomplete, emailjs.ErrNotConfigured,
	// *emailjs.APIError, or a repository error.
	Send(ctx context.Context, draft ReplyDraft) error
}
