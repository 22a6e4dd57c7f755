package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/sanchitsharma1/Bizdash/models"
)

func TestAuthenticateSuccessIssuesVerifiableToken(t *testing.T) {
	gate := NewGate("admin", "hunter2", "test-secret", time.Hour)

	token, expiresAt, err := gate.Authenticate("admin", "hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry %s", expiresAt)
	}

	username, err := gate.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "admin" {
		t.Fatalf("expected subject admin, got %q", username)
	}
}

func TestAuthenticateBadCredentials(t *testing.T) {
	gate := NewGate("admin", "hunter2", "test-secret", time.Hour)

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"someone", "hunter2"},
		{"", ""},
	}
	for _, tc := range cases {
		// No lockout: every attempt fails the same way regardless of count.
		for i := 0; i < 3; i++ {
			_, _, err := gate.Authenticate(tc.username, tc.password)
			if !errors.Is(err, models.ErrBadCredentials) {
				t.Fatalf("(%q,%q) attempt %d: expected bad credentials, got %v",
					tc.username, tc.password, i, err)
			}
		}
	}
}

func TestAuthenticateNotConfigured(t *testing.T) {
	gate := NewGate("", "", "test-secret", time.Hour)

	_, _, err := gate.Authenticate("admin", "hunter2")
	if !errors.Is(err, models.ErrAuthNotConfigured) {
		t.Fatalf("expected not-configured error, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	gate := NewGate("admin", "hunter2", "test-secret", -time.Minute)

	token, _, err := gate.Authenticate("admin", "hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := gate.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestVerifyRejectsForeignAndGarbageTokens(t *testing.T) {
	gate := NewGate("admin", "hunter2", "test-secret", time.Hour)
	other := NewGate("admin", "hunter2", "other-secret", time.Hour)

	foreign, _, err := other.Authenticate("admin", "hunter2")
	if err != nil {
		t.Fatalf("authenticate on other gate: %v", err)
	}

	for _, token := range []string{foreign, "not-a-token", ""} {
		if _, err := gate.Verify(token); err == nil {
			t.Fatalf("expected verification failure for %q", token)
		}
	}
}
