package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pulseboard-dev/pulseboard/internal/account"
	"github.com/pulseboard-dev/pulseboard/internal/store"
)

func newTestAuthenticator(t *testing.T) (*Authenticator, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := account.NewManager(s).Create("alice", "a@x.com", "secret", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return NewAuthenticator(s), s
}

func TestAuthenticateSuccess(t *testing.T) {
	a, s := newTestAuthenticator(t)
	pinned := time.Date(2026, 8, 28, 10, 30, 0, 0, time.Local)
	a.now = func() time.Time { return pinned }

	user, err := a.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Username != "alice" || user.Email != "a@x.com" {
		t.Errorf("Unexpected user: %+v", user)
	}
	if user.Password != "" {
		t.Error("Authenticate must not return the password")
	}

	doc, _ := s.Load()
	if len(doc.LoginEvents) != 1 {
		t.Fatalf("Expected exactly one login event, got %d", len(doc.LoginEvents))
	}
	ev := doc.LoginEvents[0]
	if ev.Username != "alice" {
		t.Errorf("Expected event for alice, got %q", ev.Username)
	}
	if ev.Date != "2026-08-28" {
		t.Errorf("Expected derived date 2026-08-28, got %q", ev.Date)
	}
	if !ev.Timestamp.Equal(pinned) {
		t.Errorf("Expected timestamp %v, got %v", pinned, ev.Timestamp)
	}
}

func TestAuthenticateFailure(t *testing.T) {
	a, s := newTestAuthenticator(t)

	// Wrong password and unknown user must be indistinguishable.
	_, wrongPw := a.Authenticate("alice", "nope")
	_, unknown := a.Authenticate("mallory", "secret")
	if !errors.Is(wrongPw, store.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(unknown, store.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPw.Error() != unknown.Error() {
		t.Errorf("Failure messages must match: %q vs %q", wrongPw.Error(), unknown.Error())
	}

	doc, _ := s.Load()
	if len(doc.LoginEvents) != 0 {
		t.Errorf("Failed logins must not record events, got %d", len(doc.LoginEvents))
	}
}
