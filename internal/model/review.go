package model

import "time"

// Review is a guest review shown on the public site.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	Rating    int       `json:"rating"` // 1..5
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewListOptions carries pagination parameters for listing reviews.
type ReviewListOptions struct {
	Limit  int
	Offset int
}
