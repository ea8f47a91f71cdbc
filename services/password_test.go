package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("rejects weak passwords", func(t *testing.T) {
		for _, weak := range []string{"short", "nodigits!", "nosymbol1"} {
			if _, err := HashPassword(weak); err == nil {
				t.Errorf("Expected error hashing weak password %q", weak)
			}
		}
	})

	t.Run("produces salted hash", func(t *testing.T) {
		hash, err := HashPassword("secret1!")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		if !strings.Contains(hash, "$") {
			t.Errorf("Expected salt$hash format, got %q", hash)
		}

		again, err := HashPassword("secret1!")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		if hash == again {
			t.Error("Expected distinct salts to produce distinct hashes")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1!")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	t.Run("matches correct password", func(t *testing.T) {
		ok, err := VerifyPassword(hash, "secret1!")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !ok {
			t.Error("Expected correct password to verify")
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		ok, err := VerifyPassword(hash, "wrong2@")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ok {
			t.Error("Expected wrong password to fail verification")
		}
	})

	t.Run("rejects malformed stored hash", func(t *testing.T) {
		if _, err := VerifyPassword("not-a-valid-hash", "secret1!"); err == nil {
			t.Error("Expected error for malformed stored password")
		}
	})
}
