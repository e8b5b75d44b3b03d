package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secreto123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secreto123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Verify("secreto123", hash) {
		t.Error("Verify failed for correct password")
	}
	if Verify("incorrecto", hash) {
		t.Error("Verify succeeded for wrong password")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-refresh-token")
	b := HashToken("some-refresh-token")
	if a != b {
		t.Error("HashToken must be deterministic")
	}
	if a == HashToken("other-token") {
		t.Error("different tokens must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("short") {
		t.Error("passwords under 8 chars must be rejected")
	}
	if !ValidatePassword("longenough") {
		t.Error("8+ char passwords must be accepted")
	}
}
