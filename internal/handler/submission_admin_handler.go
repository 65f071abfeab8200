package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/homestay/backend/internal/dashboard"
	"github.com/homestay/backend/internal/export"
	"github.com/homestay/backend/internal/model"
	"github.com/homestay/backend/internal/repository"
	"github.com/homestay/backend/internal/service"
	"github.com/homestay/backend/pkg/emailjs"
)

// SubmissionAdminHandler exposes the admin review workflow over HTTP:
// listing/filtering the dashboard view, refreshing it, changing statuses,
// composing and sending replies, and exporting the filtered view as CSV.
type SubmissionAdminHandler struct {
	view     *dashboard.View
	replySvc service.ReplyService
	repo     repository.SubmissionRepository
}

// NewSubmissionAdminHandler creates a SubmissionAdminHandler.
func NewSubmissionAdminHandler(view *dashboard.View, replySvc service.ReplyService, repo repository.SubmissionRepository) *SubmissionAdminHandler {
	return &SubmissionAdminHandler{view: view, replySvc: replySvc, repo: repo}
}

// listResponse is the JSON response for the dashboard list endpoints.
type listResponse struct {
	Submissions []*model.Submission `json:"submissions"`
	Counts      map[string]int      `json:"counts"`
	Error       string              `json:"error,omitempty"`
}

// filterFromParams builds the request-scoped filter from the status/q
// query parameters. Filter state is per request, never stored in the view,
// so concurrent admin tabs cannot clobber each other.
func filterFromParams(r *http.Request) dashboard.Filter {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = dashboard.StatusAll
	}
	return dashboard.Filter{Status: status, Search: r.URL.Query().Get("q")}
}

// List handles GET /api/admin/submissions.
// Query params: status (all/new/replied/archived), q (search term).
// Loads the view from the store on first use; after that the in-memory
// list is filtered without touching the store.
func (h *SubmissionAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	f := filterFromParams(r)

	if !h.view.Loaded() {
		if _, err := h.view.Load(r.Context()); err != nil {
			// Degrade to the stale (possibly empty) list but tell the
			// operator the load failed.
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(listResponse{
				Submissions: h.view.FilteredBy(f),
				Counts:      h.view.Counts(),
				Error:       "load_failed",
			})
			return
		}
	}

	_ = json.NewEncoder(w).Encode(listResponse{
		Submissions: h.view.FilteredBy(f),
		Counts:      h.view.Counts(),
	})
}

// Refresh handles POST /api/admin/submissions/refresh: a manual re-sync
// from the store. On failure the currently displayed list is preserved and
// returned alongside the error.
func (h *SubmissionAdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	f := filterFromParams(r)

	if _, err := h.view.Refresh(r.Context()); err != nil {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(listResponse{
			Submissions: h.view.FilteredBy(f),
			Counts:      h.view.Counts(),
			Error:       "refresh_failed",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(listResponse{
		Submissions: h.view.FilteredBy(f),
		Counts:      h.view.Counts(),
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/submissions/{id}/status.
// The in-memory view is updated optimistically and rolled back if the
// store write fails.
func (h *SubmissionAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if !model.ValidStatus(req.Status) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		return
	}

	if err := h.view.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ReplyDraft handles GET /api/admin/submissions/{id}/reply-draft.
// Query param: template (welcome/custom, default custom). Returns the
// rendered draft for the composer; re-requesting with a different template
// discards whatever the operator had typed.
func (h *SubmissionAdminHandler) ReplyDraft(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tpl := r.URL.Query().Get("template")
	if tpl == "" {
		tpl = service.TemplateCustom
	}
	if !service.ValidTemplate(tpl) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_template"})
		return
	}

	sub, err := h.repo.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "load_failed"})
		return
	}

	draft := h.replySvc.ApplyTemplate(sub, tpl)
	_ = json.NewEncoder(w).Encode(draft)
}

type replyRequest struct {
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	TemplateName string `json:"template_name"`
}

// Reply handles POST /api/admin/submissions/{id}/reply: dispatches the
// composed reply and marks the submission replied. The submission's status
// flips if and only if the dispatch succeeded; on failure the client keeps
// the draft open for retry.
func (h *SubmissionAdminHandler) Reply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	draft := service.ReplyDraft{
		SubmissionID: r.PathValue("id"),
		Subject:      req.Subject,
		Body:         req.Body,
		TemplateName: req.TemplateName,
	}

	err := h.replySvc.Send(r.Context(), draft)
	if err == nil {
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
		return
	}

	var apiErr *emailjs.APIError
	switch {
	case errors.Is(err, service.ErrDraftIncomplete):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "subject_and_body_required"})
	case errors.Is(err, emailjs.ErrNotConfigured):
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email_not_configured"})
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case errors.Is(err, service.ErrMarkReplied):
		// The email went out but the status write failed; the operator
		// should refresh rather than resend.
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "replied_status_update_failed"})
	case errors.As(err, &apiErr):
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": dispatchErrorCode(apiErr)})
	default:
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "send_failed"})
	}
}

// dispatchErrorCode maps a provider error to the operator-facing code.
func dispatchErrorCode(err *emailjs.APIError) string {
	switch err.Kind() {
	case emailjs.KindTemplate:
		return "invalid_template_params"
	case emailjs.KindConfig:
		return "invalid_service_config"
	default:
		return "send_failed"
	}
}

// Export handles GET /api/admin/submissions/export: the currently filtered
// view serialized as CSV, offered as a date-stamped download.
func (h *SubmissionAdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	f := filterFromParams(r)

	if !h.view.Loaded() {
		if _, err := h.view.Load(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "load_failed"})
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	_ = export.WriteSubmissionsCSV(w, h.view.FilteredBy(f))
}
