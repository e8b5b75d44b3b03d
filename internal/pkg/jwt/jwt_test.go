package jwt

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "empleado1@smartlining.com", "Empleado Uno", "EMPLEADO", testSecret, 24)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims, err := ValidateAccessToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateAccessToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "empleado1@smartlining.com" {
		t.Errorf("Email = %s", claims.Email)
	}
	if claims.Rol != "EMPLEADO" {
		t.Errorf("Rol = %s", claims.Rol)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "a@b.com", "A", "ADMINISTRADOR", testSecret, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateAccessToken(token, "another-secret"); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestExpiredAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(1, "a@b.com", "A", "EMPLEADO", testSecret, -1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateAccessToken(token, testSecret); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-1", testSecret, 7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	claims, err := ValidateRefreshToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateRefreshToken returned error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.TokenID != "token-id-1" {
		t.Errorf("TokenID = %s, want token-id-1", claims.TokenID)
	}
}

func TestGetExpiryTime(t *testing.T) {
	expiry := GetExpiryTime(7)
	want := time.Now().Add(7 * 24 * time.Hour)
	if diff := expiry.Sub(want); diff > time.Minute || diff < -time.Minute {
		t.Errorf("GetExpiryTime(7) off by %v", diff)
	}
}
