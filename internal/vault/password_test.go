package vault

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifiableAndSalted(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if hash == "correct horse" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if !CheckPassword("correct horse", hash) {
		t.Fatalf("correct password did not verify")
	}
	if CheckPassword("wrong horse", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	a, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("anything", "not a bcrypt hash") {
		t.Fatalf("malformed hash verified")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty hash verified")
	}
}
