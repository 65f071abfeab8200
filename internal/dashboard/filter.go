package dashboard

import (
	"strings"

	"github.com/homestay/backend/internal/model"
)

// StatusAll is the filter value that matches every submission status.
const StatusAll = "all"

// Filter is the dashboard's ephemeral filter/search state.
type Filter struct {
	// Status is "all", "new", "replied" or "archived".
	Status string
	// Search is a case-insensitive substring matched against name, email
	// and message.
	Search string
}

// Matches reports whether the submission passes both the status filter and
// the search term.
func (f Filter) Matches(sub *model.Submission) bool {
	if f.Status != "" && f.Status != StatusAll && sub.Status != f.Status {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(sub.Name), term) ||
		strings.Contains(strings.ToLower(sub.Email), term) ||
		strings.Contains(strings.ToLower(sub.Message), term)
}

// Apply returns the submissions matching the filter, preserving order.
// It is a pure function of (subs, f): no caching, no mutation of subs.
func (f Filter) Apply(subs []*model.Submission) []*model.Submission {
	out := make([]*model.Submission, 0, len(subs))
	for _, s := range subs {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}
