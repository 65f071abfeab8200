package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type contextKey string

const sessionKey contextKey = "admin_session"

// SessionFromContext returns the validated admin session, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}

// WithSession stores a validated admin session in the context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// RequireAdmin validates the admin session cookie (signature and expiry)
// and stores the session in the request context. Requests without a valid
// session get 401.
func RequireAdmin(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			expiresAt, err := VerifySessionToken(cookie.Value, sessionSecret, time.Now())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			ctx := WithSession(r.Context(), Session{Token: cookie.Value, ExpiresAt: expiresAt})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
