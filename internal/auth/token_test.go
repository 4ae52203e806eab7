package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret-at-least-16", time.Hour)

	tok, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	got, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != "user-123" {
		t.Fatalf("user id mismatch: got %q want %q", got, "user-123")
	}
}

func TestTokenVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret-at-least-16", -1*time.Second)

	tok, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret-0123456", time.Hour).Generate("u2")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret-0123456", time.Hour).Verify(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for bad signature, got %v", err)
	}
}

func TestTokenVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret-at-least-16", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := m.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("Verify(%q): expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestTokenVerify_ExpiredAndTamperedAreDistinct(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret-at-least-16", -1*time.Minute)

	expired, err := m.Generate("u3")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, expErr := m.Verify(expired)
	_, tamErr := m.Verify(expired + "x")

	if !errors.Is(expErr, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", expErr)
	}
	if !errors.Is(tamErr, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", tamErr)
	}
}
