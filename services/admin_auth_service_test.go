package services

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	svc := GetAdminAuthService()

	hash, err := svc.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !svc.VerifyPassword(hash, "correct horse battery") {
		t.Error("expected matching password to verify")
	}
	if svc.VerifyPassword(hash, "wrong password") {
		t.Error("expected non-matching password to fail")
	}
}

func TestValidatePassword(t *testing.T) {
	svc := GetAdminAuthService()

	if svc.ValidatePassword("short") {
		t.Error("expected 5-char password to be rejected")
	}
	if !svc.ValidatePassword("eightch8") {
		t.Error("expected 8-char password to be accepted")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	svc := GetAdminAuthService()

	a := svc.HashToken("session-token")
	b := svc.HashToken("session-token")
	c := svc.HashToken("other-token")

	if a != b {
		t.Error("same token must hash to the same value")
	}
	if a == c {
		t.Error("different tokens must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
