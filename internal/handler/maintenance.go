package handler

import (
	"encoding/json"
	"net/http"
)

// Maintenance gates the public API behind a maintenance flag. When enabled,
// wrapped routes answer 503 so the frontend can show its maintenance page.
// Health and admin routes are wired around this middleware and stay
// reachable, letting the operator turn the flag off again.
func Maintenance(enabled func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if enabled() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "3600")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "maintenance"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
