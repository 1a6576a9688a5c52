package token

import (
	"testing"
	"time"
)

func TestMintAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	signed, err := m.Mint("user-1", "alice", "alice smith", "alice@example.com")
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want alice", claims.Username)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", claims.Email)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Minute).Mint("user-1", "", "", "")
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	if _, err := NewManager("secret-b", time.Minute).Verify(signed); err == nil {
		t.Error("Verify with wrong secret should fail")
	}
}

func TestVerify_Expired(t *testing.T) {
	signed, err := NewManager("test-secret", -time.Minute).Mint("user-1", "", "", "")
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	if _, err := NewManager("test-secret", -time.Minute).Verify(signed); err == nil {
		t.Error("Verify of expired token should fail")
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Minute)
	for _, in := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(in); err == nil {
			t.Errorf("Verify(%q) should fail", in)
		}
	}
}

func TestRefreshTokenCarriesOnlySubject(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	signed, err := m.Mint("user-2", "", "", "")
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "user-2" || claims.Username != "" || claims.Email != "" {
		t.Errorf("claims = %+v, want only subject set", claims)
	}
}
