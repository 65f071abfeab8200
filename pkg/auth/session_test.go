package auth

import (
	"errors"
	"testing"
	"time"
)

func TestLogin_CorrectPassword(t *testing.T) {
	a := NewSharedSecret("hunter2", SessionSecretBytes("test-secret"))
	a.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	sess, err := a.Login("hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected a session token")
	}
	want := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	if !sess.ExpiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, sess.ExpiresAt)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	a := NewSharedSecret("hunter2", SessionSecretBytes("test-secret"))

	_, err := a.Login("letmein")
	if !errors.Is(err, ErrBadPassword) {
		t.Errorf("expected ErrBadPassword, got %v", err)
	}
}

func TestLogin_NoPasswordConfigured(t *testing.T) {
	a := NewSharedSecret("", SessionSecretBytes("test-secret"))

	// An empty configured password must never authenticate, even against
	// an empty input.
	_, err := a.Login("")
	if !errors.Is(err, ErrBadPassword) {
		t.Errorf("expected ErrBadPassword, got %v", err)
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	token := CreateSessionToken(expiresAt, secret)
	got, err := VerifySessionToken(token, secret, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(expiresAt) {
		t.Errorf("expected expiry %v, got %v", expiresAt, got)
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	expiresAt := time.Now().Add(-time.Minute)

	token := CreateSessionToken(expiresAt, secret)
	_, err := VerifySessionToken(token, secret, time.Now())
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token := CreateSessionToken(time.Now().Add(time.Hour), SessionSecretBytes("secret-a"))

	if _, err := VerifySessionToken(token, SessionSecretBytes("secret-b"), time.Now()); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifySessionToken_Malformed(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	for _, token := range []string{"", "no-dot-here", "!!!.deadbeef"} {
		if _, err := VerifySessionToken(token, secret, time.Now()); err == nil {
			t.Errorf("token %q: expected error", token)
		}
	}
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}
	if !s.Valid(now) {
		t.Error("expected session to be valid before expiry")
	}
	if s.Valid(now.Add(2 * time.Minute)) {
		t.Error("expected session to be invalid after expiry")
	}
}

func TestSessionSecretBytes_Padding(t *testing.T) {
	short := SessionSecretBytes("abc")
	if len(short) != 32 {
		t.Errorf("expected short secret padded to 32 bytes, got %d", len(short))
	}
	if string(short[:3]) != "abc" {
		t.Errorf("expected padded secret to retain prefix, got %q", short[:3])
	}

	long := "this-secret-is-definitely-longer-than-thirty-two-bytes"
	if got := SessionSecretBytes(long); len(got) != len(long) {
		t.Errorf("expected long secret unchanged, got %d bytes", len(got))
	}
}
