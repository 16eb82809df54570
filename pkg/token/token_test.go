package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "emma", "user", testSecret, 24)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(signed, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Username != "emma" || claims.Role != "user" {
		t.Errorf("unexpected identity claims: %+v", claims)
	}
	if claims.Issuer != "pulse-api" {
		t.Errorf("expected issuer pulse-api, got %q", claims.Issuer)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Errorf("expected roughly 24h lifetime, got %v", remaining)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "emma", "user", testSecret, 24)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	if _, err := ValidateJWT(signed, "a-different-secret"); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateExpired(t *testing.T) {
	// A negative lifetime places the expiry in the past.
	signed, err := GenerateJWT(42, "emma", "user", testSecret, -1)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	_, err = ValidateJWT(signed, testSecret)
	if err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected expiry error, got %v", err)
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:   42,
		Username: "emma",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := ValidateJWT(tokenString, testSecret); err == nil {
		t.Fatal("expected validation to reject alg=none tokens")
	}
}

func TestValidateEmptyInputs(t *testing.T) {
	if _, err := ValidateJWT("", testSecret); err == nil {
		t.Error("expected error for empty token")
	}
	if _, err := ValidateJWT("not.a.token", ""); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := ValidateJWT("garbage", testSecret); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateMissingUserID(t *testing.T) {
	claims := &Claims{
		Username: "emma",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := ValidateJWT(signed, testSecret); err == nil {
		t.Fatal("expected validation to reject a token without an id claim")
	}
}
