package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	return &JWTService{secretKey: "test-secret-key"}
}

func TestGenerateAndVerifyAdminJWT(t *testing.T) {
	svc := newTestJWTService(t)
	adminID := uuid.Must(uuid.NewV7()).String()

	token, err := svc.GenerateAdminJWT(adminID, "seller@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminJWT failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.VerifyAdminJWT(token)
	if err != nil {
		t.Fatalf("VerifyAdminJWT failed: %v", err)
	}
	if claims.AdminID != adminID {
		t.Errorf("AdminID = %s, want %s", claims.AdminID, adminID)
	}
	if claims.Email != "seller@example.com" {
		t.Errorf("Email = %s, want seller@example.com", claims.Email)
	}
	if claims.Issuer != "seller-dashboard" {
		t.Errorf("Issuer = %s, want seller-dashboard", claims.Issuer)
	}
}

func TestGenerateAdminJWTRejectsEmptyInput(t *testing.T) {
	svc := newTestJWTService(t)

	if _, err := svc.GenerateAdminJWT("", "seller@example.com"); err == nil {
		t.Error("expected error for empty adminID")
	}
	if _, err := svc.GenerateAdminJWT("some-id", ""); err == nil {
		t.Error("expected error for empty email")
	}
}

func TestVerifyAdminJWTRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)
	other := &JWTService{secretKey: "a-different-secret"}

	token, err := svc.GenerateAdminJWT(uuid.Must(uuid.NewV7()).String(), "seller@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminJWT failed: %v", err)
	}

	if _, err := other.VerifyAdminJWT(token); err == nil {
		t.Error("expected verification to fail with the wrong secret")
	}
}

func TestVerifyAdminJWTRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	if _, err := svc.VerifyAdminJWT("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestVerifyAdminJWTRejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAdminJWT(uuid.Must(uuid.NewV7()).String(), "seller@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminJWT failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token parts, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := svc.VerifyAdminJWT(tampered); err == nil {
		t.Error("expected verification to fail for tampered signature")
	}
}
