package auth

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hash == "" || hash == "Password123!" {
		t.Error("Expected a non-empty hash distinct from the input")
	}

	if !VerifyPassword(hash, "Password123!") {
		t.Error("Expected the original password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("Expected a wrong password to fail verification")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("Password123!")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	h2, err := HashPassword("Password123!")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if h1 == h2 {
		t.Error("Expected different salts to produce different hashes")
	}
}
