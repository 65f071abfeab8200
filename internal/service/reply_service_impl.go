package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/homestay/backend/internal/model"
	"github.com/homestay/backend/internal/repository"
	"github.com/homestay/backend/pkg/emailjs"
)

// replyServiceImpl is the production implementation of ReplyService.
type replyServiceImpl struct {
	repo    repository.SubmissionRepository
	mailer  emailjs.Client
	updater StatusUpdater
}

// NewReplyService creates a ReplyService. The updater is called after a
// successful dispatch to flip the submission to "replied".
func NewReplyService(repo repository.SubmissionRepository, mailer emailjs.Client, updater StatusUpdater) ReplyService {
	return &replyServiceImpl{repo: repo, mailer: mailer, updater: updater}
}

// OpenReply creates a draft prefilled from the "custom" template.
func (s *replyServiceImpl) OpenReply(sub *model.Submission) ReplyDraft {
	return s.ApplyTemplate(sub, TemplateCustom)
}

// ApplyTemplate re-renders the draft from the named template. The re-render
// is deliberately destructive: operator edits are discarded, not merged.
func (s *replyServiceImpl) ApplyTemplate(sub *model.Submission, name string) ReplyDraft {
	subject, body := RenderReply(name, sub)
	return ReplyDraft{
		SubmissionID: sub.ID,
		Subject:      subject,
		Body:         body,
		TemplateName: name,
	}
}

// Send validates the draft, dispatches it, and marks the submission
// replied. Dispatch strictly precedes the status mutation: a failed send is
// never recorded as replied, and a successful send is always recorded.
func (s *replyServiceImpl) Send(ctx context.Context, draft ReplyDraft) error {
	if strings.TrimSpace(draft.Subject) == "" || strings.TrimSpace(draft.Body) == "" {
		return ErrDraftIncomplete
	}

	// Check configuration before touching the network or the store.
	if !s.mailer.Configured() {
		return emailjs.ErrNotConfigured
	}

	sub, err := s.repo.FindByID(ctx, draft.SubmissionID)
	if err != nil {
		return fmt.Errorf("load submission: %w", err)
	}

	msg := emailjs.Message{
		ToEmail:      sub.Email,
		Subject:      draft.Subject,
		Body:         draft.Body,
		FromName:     "Anuradhapura Homestay",
		ReplyTo:      sub.Email,
		OriginalDate: sub.CreatedAt.Format("Jan 2, 2006"),
		OriginalText: sub.Message,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Warn("reply dispatch failed", "submission_id", sub.ID, "error", err)
		return err
	}

	if err := s.updater.UpdateStatus(ctx, sub.ID, model.StatusReplied); err != nil {
		// The email went out; the status write failed. Surface it so the
		// operator knows the dashboard is behind the truth.
		slog.Error("mark replied failed after successful dispatch", "submission_id", sub.ID, "error", err)
		return fmt.Errorf("%w: %v", ErrMarkReplied, err)
	}

	slog.Info("reply sent", "submission_id", sub.ID, "to", sub.Email, "template", draft.TemplateName)
	return nil
}
