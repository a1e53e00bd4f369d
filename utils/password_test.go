package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "pw1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if !CheckPasswordHash("pw1", hash) {
		t.Fatalf("expected password to verify")
	}
	if CheckPasswordHash("pw2", hash) {
		t.Fatalf("wrong password verified")
	}

	again, _ := HashPassword("pw1")
	if again == hash {
		t.Fatalf("expected salted hashes to differ")
	}
}
