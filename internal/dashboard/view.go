// Package dashboard holds the admin dashboard's view of the submission
// list: an in-memory copy of the store, loaded on demand, filtered and
// searched in memory, and mutated only through optimistic status updates
// that roll back when the durable write fails.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/homestay/backend/internal/model"
	"github.com/homestay/backend/internal/repository"
)

// View owns the in-memory submission list. All mutations flow through
// Load/Refresh/UpdateStatus; no other component touches the list directly.
// The original dashboard ran on a single-threaded event loop; here a mutex
// serializes handlers instead. Every accessor returns struct copies so no
// pointer into the list escapes the lock.
type View struct {
	repo repository.SubmissionRepository

	mu     sync.Mutex
	subs   []*model.Submission
	loaded bool
}

// NewView creates an empty View over the given repository.
func NewView(repo repository.SubmissionRepository) *View {
	return &View{repo: repo}
}

// Load fetches all submissions, newest first, replacing the in-memory
// list. On failure the previously loaded list (empty on first load) is
// kept unchanged and the error is returned for the caller to report; a
// load failure is a recoverable condition, never fatal.
func (v *View) Load(ctx context.Context) ([]*model.Submission, error) {
	subs, err := v.repo.ListAll(ctx)
	if err != nil {
		slog.Error("dashboard load failed", "error", err)
		return v.snapshot(), fmt.Errorf("load submissions: %w", err)
	}

	v.mu.Lock()
	// Copy on the way in as well, in case the repository retains the
	// structs it returned.
	v.subs = copySubs(subs)
	v.loaded = true
	v.mu.Unlock()
	return v.snapshot(), nil
}

// Refresh re-syncs the list from the store. Identical to Load except that
// callers present it with a "refreshing" indicator; on failure the
// currently displayed list is preserved.
func (v *View) Refresh(ctx context.Context) ([]*model.Submission, error) {
	return v.Load(ctx)
}

// Loaded reports whether an initial Load has succeeded.
func (v *View) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// UpdateStatus applies the new status to the in-memory list immediately,
// then issues the store write. If the write fails the in-memory field is
// reverted to its pre-update value and the error returned; there is no
// automatic retry. The visible status never diverges from the durable one
// beyond the window of the in-flight write.
//
// Any status may be set from any other; no transition is forbidden.
func (v *View) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	sub := v.find(id)
	if sub == nil {
		// Not in the loaded view (stale view or direct API call):
		// write through to the store.
		return v.repo.UpdateStatus(ctx, id, status)
	}

	prev := sub.Status
	return withOptimisticUpdate(
		func() { sub.Status = status },
		func() error { return v.repo.UpdateStatus(ctx, id, status) },
		func() {
			sub.Status = prev
			slog.Warn("status update rolled back", "submission_id", id, "status", prev)
		},
	)
}

// FilteredBy recomputes the displayed list for the given filter. Filter
// state lives with the caller (each request carries its own), so concurrent
// dashboards never see each other's filters. Always recomputed from the
// full list; nothing is cached.
func (v *View) FilteredBy(f Filter) []*model.Submission {
	v.mu.Lock()
	defer v.mu.Unlock()
	return copySubs(f.Apply(v.subs))
}

// Counts returns per-status tallies over the full (unfiltered) list.
func (v *View) Counts() map[string]int {
	v.mu.Lock()
	defer v.mu.Unlock()
	counts := map[string]int{
		model.StatusNew:      0,
		model.StatusReplied:  0,
		model.StatusArchived: 0,
	}
	for _, s := range v.subs {
		counts[s.Status]++
	}
	return counts
}

// snapshot returns struct copies of the current list. UpdateStatus mutates
// the stored structs in place, so handing out the stored pointers would
// race with JSON encoding outside the lock.
func (v *View) snapshot() []*model.Submission {
	v.mu.Lock()
	defer v.mu.Unlock()
	return copySubs(v.subs)
}

func copySubs(subs []*model.Submission) []*model.Submission {
	out := make([]*model.Submission, len(subs))
	for i, s := range subs {
		cp := *s
		out[i] = &cp
	}
	return out
}

// find returns the in-memory submission with the given id, or nil.
// Caller must hold v.mu.
func (v *View) find(id string) *model.Submission {
	for _, s := range v.subs {
		if s.ID == id {
			return s
		}
	}
	return nil
}
