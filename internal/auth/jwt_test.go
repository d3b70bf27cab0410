package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := GenerateToken(userID, email, RoleStudent)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, extractedUserID)
	}
	if extractedEmail != email {
		t.Fatalf("Expected email %s, got %s", email, extractedEmail)
	}
	if extractedRole != RoleStudent {
		t.Fatalf("Expected role %s, got %s", RoleStudent, extractedRole)
	}
}

func TestGenerateTokenEmptyUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "test@example.com", RoleStudent); err == nil {
		t.Fatal("expected an error for empty userID")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	token, err := GenerateToken(uuid.New().String(), "test@example.com", RoleStudent)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	os.Setenv("JWT_SECRET", "a-different-secret")
	if _, _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}
