package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/homestay/backend/pkg/auth"
)

// AdminAuthHandler handles the shared-password admin login.
type AdminAuthHandler struct {
	authenticator auth.Authenticator
	secureCookies bool
}

// NewAdminAuthHandler creates an AdminAuthHandler. secureCookies should be
// true everywhere except local development over plain HTTP.
func NewAdminAuthHandler(authenticator auth.Authenticator, secureCookies bool) *AdminAuthHandler {
	return &AdminAuthHandler{authenticator: authenticator, secureCookies: secureCookies}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. On success it sets the session
// cookie and returns the expiry.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	session, err := h.authenticator.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadPassword) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_password"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "login_failed"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":         true,
		"expires_at": session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout handles POST /api/admin/logout by clearing the session cookie.
func (h *AdminAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}

// Session handles GET /api/admin/session (behind RequireAdmin); it reports
// the current session's expiry so the dashboard can warn before logout.
func (h *AdminAuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"authenticated": true,
		"expires_at":    session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
