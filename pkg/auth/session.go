// Package auth implements the admin dashboard's shared-secret
// authentication: a single configured password exchanged for an
// HMAC-signed session token with a fixed expiry.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// SessionTTL is how long an admin session stays valid after login.
const SessionTTL = 24 * time.Hour

const sessionCookieName = "homestay_admin_session"
const minSecretLen = 32

var (
	// ErrBadPassword is returned by Login when the password does not match.
	ErrBadPassword = errors.New("invalid password")
	// ErrExpired is returned when a session token's expiry has passed.
	ErrExpired = errors.New("session expired")
)

// Session is an authenticated admin session.
type Session struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session has not yet expired at time now.
func (s Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// Authenticator exchanges a credential for a Session. SharedSecret is the
// only implementation today; token or OIDC variants would slot in here.
type Authenticator interface {
	Login(password string) (Session, error)
}

// SharedSecret authenticates against a single configured admin password.
type SharedSecret struct {
	password string
	secret   []byte
	now      func() time.Time
}

// NewSharedSecret creates a SharedSecret authenticator. secret signs the
// issued session tokens.
func NewSharedSecret(password string, secret []byte) *SharedSecret {
	return &SharedSecret{password: password, secret: secret, now: time.Now}
}

var _ Authenticator = (*SharedSecret)(nil)

// Login compares the password in constant time and, on success, issues a
// session valid for SessionTTL.
func (a *SharedSecret) Login(password string) (Session, error) {
	if a.password == "" {
		return Session{}, ErrBadPassword
	}
	// Compare digests so the comparison is constant-time regardless of
	// input length.
	want := sha256.Sum256([]byte(a.password))
	got := sha256.Sum256([]byte(password))
	if !hmac.Equal(want[:], got[:]) {
		return Session{}, ErrBadPassword
	}

	expiresAt := a.now().Add(SessionTTL).Truncate(time.Second)
	return Session{
		Token:     CreateSessionToken(expiresAt, a.secret),
		ExpiresAt: expiresAt,
	}, nil
}

// CreateSessionToken builds a signed token embedding the expiry instant.
func CreateSessionToken(expiresAt time.Time, secret []byte) string {
	payload := []byte(strconv.FormatInt(expiresAt.Unix(), 10))
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString(payload) + "." + sig
}

// VerifySessionToken validates the token signature and expiry, returning
// the expiry instant on success.
func VerifySessionToken(token string, secret []byte, now time.Time) (time.Time, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return time.Time{}, errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return time.Time{}, err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return time.Time{}, errors.New("invalid signature")
	}

	unix, err := strconv.ParseInt(string(payload), 10, 64)
	if err != nil {
		return time.Time{}, errors.New("invalid expiry payload")
	}
	expiresAt := time.Unix(unix, 0)
	if !now.Before(expiresAt) {
		return time.Time{}, ErrExpired
	}
	return expiresAt, nil
}

// SessionCookieName is the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes derives the signing key from the configured secret
// string, zero-padding to a minimum of 32 bytes.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
