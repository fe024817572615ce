package token

import (
	"errors"
	"testing"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := NewManager(Config{Secret: ""}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m, err := NewManager(Config{Secret: "k"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.TTL() != DefaultTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTTL, m.TTL())
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager(Config{Secret: "test-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	raw, err := m.Issue("acc_42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected non-empty token")
	}

	id, err := m.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != "acc_42" {
		t.Fatalf("expected acc_42, got %q", id)
	}
}

func TestVerify_Expired(t *testing.T) {
	m, err := NewManager(Config{Secret: "test-secret", TTL: -time.Minute})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	raw, err := m.Issue("acc_42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.Verify(raw); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_NotYetExpired(t *testing.T) {
	// One second of lifetime left must still verify.
	m, err := NewManager(Config{Secret: "test-secret", TTL: time.Second})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	raw, err := m.Issue("acc_42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.Verify(raw); err != nil {
		t.Fatalf("expected token still valid, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	issuer, _ := NewManager(Config{Secret: "key-a", TTL: time.Hour})
	verifier, _ := NewManager(Config{Secret: "key-b", TTL: time.Hour})

	raw, err := issuer.Issue("acc_42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(raw); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	m, _ := NewManager(Config{Secret: "test-secret", TTL: time.Hour})

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := m.Verify(raw); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}
