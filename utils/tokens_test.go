package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected an error for an empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("secret")
	if err != nil {
		t.Fatal(err)
	}
	token, err := m.NewJWT("u1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := m.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "u1" {
		t.Errorf("expected subject u1, got %q", sub)
	}
}

func TestNewRefreshTokenUnique(t *testing.T) {
	m, err := NewManager("secret")
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := m.NewRefreshToken()
		if err != nil {
			t.Fatal(err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 64 hex characters, got %q", token)
		}
		if seen[token] {
			t.Fatalf("duplicate refresh token: %q", token)
		}
		seen[token] = true
	}
}
