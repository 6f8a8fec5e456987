package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !CheckPassword("password123", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("password123", "not-a-bcrypt-hash") {
		t.Fatalf("expected garbage hash to fail verification")
	}
}
