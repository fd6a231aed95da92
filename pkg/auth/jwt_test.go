package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("user-123", "user@example.com", "customer")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("expected user id user-123, got %s", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %s", claims.Email)
	}
	if claims.Role != "customer" {
		t.Errorf("expected role customer, got %s", claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("different-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("user-123", "user@example.com", "customer")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateToken("user-123", "user@example.com", "customer")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}

func TestRefreshTokenCarriesOnlyIdentity(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate refresh token: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("expected user id user-123, got %s", claims.UserID)
	}
	if claims.Email != "" || claims.Role != "" {
		t.Errorf("refresh token should not carry email or role, got %q/%q", claims.Email, claims.Role)
	}
}
