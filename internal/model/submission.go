package model

import "time"

// Submission statuses. A submission is created as StatusNew, flips to
// StatusReplied when an operator sends a reply, and StatusArchived when
// filed away. Every status is reachable from every other by explicit
// operator action; nothing transitions automatically.
const (
	StatusNew      = "new"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// ValidStatus reports whether s is one of the known submission statuses.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusReplied || s == StatusArchived
}

// Submission represents one inbound contact/booking inquiry submitted via
// the public contact form.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "new" | "replied" | "archived"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
