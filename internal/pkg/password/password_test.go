package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Verify("admin123", hash) {
		t.Fatal("correct password rejected")
	}
	if Verify("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Fatal("token hash must be deterministic")
	}
	if a == HashToken("other-token") {
		t.Fatal("different tokens must hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}
