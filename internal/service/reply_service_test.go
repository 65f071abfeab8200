package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/homestay/backend/internal/model"
	"github.com/homestay/backend/internal/repository"
	"github.com/homestay/backend/pkg/emailjs"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockSubmissionRepo struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Submission, error)
}

func (m *mockSubmissionRepo) Save(ctx context.Context, sub *model.Submission) error { return nil }
func (m *mockSubmissionRepo) ListAll(ctx context.Context) ([]*model.Submission, error) {
	return nil, nil
}
func (m *mockSubmissionRepo) FindByID(ctx context.Context, id string) (*model.Submission, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockSubmissionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

type mockMailer struct {
	configured bool
	sendFunc   func(ctx context.Context, msg emailjs.Message) error
	sent       []emailjs.Message
}

func (m *mockMailer) Configured() bool { return m.configured }
func (m *mockMailer) Send(ctx context.Context, msg emailjs.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, msg)
	}
	return nil
}

type mockUpdater struct {
	updateFunc func(ctx context.Context, id, status string) error
	updates    []string // "id:status"
}

func (m *mockUpdater) UpdateStatus(ctx context.Context, id, status string) error {
	m.updates = append(m.updates, id+":"+status)
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, status)
	}
	return nil
}

func sarah() *model.Submission {
	return &model.Submission{
		ID:        "1",
		Name:      "Sarah Johnson",
		Email:     "sarah.j@email.com",
		Message:   "Do you have rooms in August?",
		Status:    model.StatusNew,
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestReplyService(repo *mockSubmissionRepo, mailer *mockMailer, updater *mockUpdater) ReplyService {
	return NewReplyService(repo, mailer, updater)
}

// ---------------------------------------------------------------------------
// Composer
// ---------------------------------------------------------------------------

func TestOpenReply_PrefillsCustomTemplate(t *testing.T) {
	svc := newTestReplyService(&mockSubmissionRepo{}, &mockMailer{configured: true}, &mockUpdater{})

	draft := svc.OpenReply(sarah())

	if draft.Subject != "Re: Your inquiry about Anuradhapura Homestay" {
		t.Errorf("unexpected subject: %q", draft.Subject)
	}
	if !strings.Contains(draft.Body, "Hi Sarah Johnson,") {
		t.Errorf("body missing greeting: %q", draft.Body)
	}
	if draft.TemplateName != TemplateCustom {
		t.Errorf("expected custom template, got %q", draft.TemplateName)
	}
	if draft.SubmissionID != "1" {
		t.Errorf("draft not bound to submission: %q", draft.SubmissionID)
	}
}

func TestApplyTemplate_DiscardsOperatorEdits(t *testing.T) {
	svc := newTestReplyService(&mockSubmissionRepo{}, &mockMailer{configured: true}, &mockUpdater{})
	sub := sarah()

	draft := svc.OpenReply(sub)
	draft.Body = "operator typed something here"
	draft.Subject = "edited subject"

	retpl := svc.ApplyTemplate(sub, TemplateWelcome)

	wantSubject, wantBody := RenderReply(TemplateWelcome, sub)
	if retpl.Subject != wantSubject || retpl.Body != wantBody {
		t.Error("re-templating must yield exactly the rendered template, discarding edits")
	}
}

func TestRenderReply_UnknownTemplatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown template name")
		}
	}()
	RenderReply("holiday-special", sarah())
}

func TestValidTemplate(t *testing.T) {
	if !ValidTemplate(TemplateWelcome) || !ValidTemplate(TemplateCustom) {
		t.Error("built-in templates must be valid")
	}
	if ValidTemplate("holiday-special") {
		t.Error("unknown template must be invalid")
	}
}

// ---------------------------------------------------------------------------
// Send
// ---------------------------------------------------------------------------

func TestSend_EmptyDraftFailsWithoutSideEffects(t *testing.T) {
	mailer := &mockMailer{configured: true}
	updater := &mockUpdater{}
	svc := newTestReplyService(&mockSubmissionRepo{}, mailer, updater)

	err := svc.Send(context.Background(), ReplyDraft{SubmissionID: "1", Subject: "  ", Body: "\n\t"})
	if !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("expected ErrDraftIncomplete, got %v", err)
	}
	if len(mailer.sent) != 0 || len(updater.updates) != 0 {
		t.Error("validation failure must have no side effects")
	}
}

func TestSend_NotConfiguredFailsBeforeNetwork(t *testing.T) {
	mailer := &mockMailer{configured: false}
	updater := &mockUpdater{}
	svc := newTestReplyService(&mockSubmissionRepo{}, mailer, updater)

	err := svc.Send(context.Background(), ReplyDraft{SubmissionID: "1", Subject: "s", Body: "b"})
	if !errors.Is(err, emailjs.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if len(mailer.sent) != 0 || len(updater.updates) != 0 {
		t.Error("configuration failure must have no side effects")
	}
}

func TestSend_SuccessMarksReplied(t *testing.T) {
	repo := &mockSubmissionRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Submission, error) {
			return sarah(), nil
		},
	}
	mailer := &mockMailer{configured: true}
	updater := &mockUpdater{}
	svc := newTestReplyService(repo, mailer, updater)

	err := svc.Send(context.Background(), ReplyDraft{SubmissionID: "1", Subject: "Re: hello", Body: "Hi!"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.ToEmail != "sarah.j@email.com" || msg.ReplyTo != "sarah.j@email.com" {
		t.Errorf("message addressed wrong: %+v", msg)
	}
	if msg.OriginalText != "Do you have rooms in August?" {
		t.Errorf("original context missing: %+v", msg)
	}
	if len(updater.updates) != 1 || updater.updates[0] != "1:replied" {
		t.Errorf("expected status flip to replied, got %v", updater.updates)
	}
}

func TestSend_DispatchFailureLeavesStatusUntouched(t *testing.T) {
	repo := &mockSubmissionRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Submission, error) {
			return sarah(), nil
		},
	}
	mailer := &mockMailer{
		configured: true,
		sendFunc: func(ctx context.Context, msg emailjs.Message) error {
			return &emailjs.APIError{Status: 422, Text: "bad params"}
		},
	}
	updater := &mockUpdater{}
	svc := newTestReplyService(repo, mailer, updater)

	err := svc.Send(context.Background(), ReplyDraft{SubmissionID: "1", Subject: "s", Body: "b"})

	var apiErr *emailjs.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind() != emailjs.KindTemplate {
		t.Errorf("expected template kind for 422, got %v", apiErr.Kind())
	}
	if len(updater.updates) != 0 {
		t.Error("a failed dispatch must never change the status")
	}
}

func TestSend_SubmissionNotFound(t *testing.T) {
	mailer := &mockMailer{configured: true}
	updater := &mockUpdater{}
	svc := newTestReplyService(&mockSubmissionRepo{}, mailer, updater)

	err := svc.Send(context.Background(), ReplyDraft{SubmissionID: "missing", Subject: "s", Body: "b"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Error("must not dispatch for a missing submission")
	}
}

func TestSend_StatusWriteFailureAfterDispatch(t *testing.T) {
	repo := &mockSubmissionRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Submission, error) {
			return sarah(), nil
		},
	}
	mailer := &mockMailer{configured: true}
	updater := &mockUpdater{
		updateFunc: func(ctx context.Context, id, status string) error {
			return errors.New("write failed")
		},
	}
	svc := newTestReplyService(repo, mailer, updater)

	err := svc.Send(context.Background(), ReplyDraft{SubmissionID: "1", Subject: "s", Body: "b"})
	if !errors.Is(err, ErrMarkReplied) {
		t.Fatalf("expected ErrMarkReplied, got %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Error("dispatch should have happened before the failed status write")
	}
}
