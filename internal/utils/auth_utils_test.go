package utils

import (
	"testing"
	"time"
)

func TestCreateAndVerifyJwtToken(t *testing.T) {
	secretKey := []byte("test-secret-key")
	expiration := time.Now().Add(time.Hour)

	token, err := CreateJwtToken(42, "alice", "alice@example.com", secretKey, expiration)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	if token == "" {
		t.Fatal("created token is empty")
	}

	claims, err := VerifyToken(token, secretKey)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.ID != 42 {
		t.Errorf("expected user id 42, got %d", claims.ID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %s", claims.Username)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", claims.Email)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	secretKey := []byte("test-secret-key")
	token, err := CreateJwtToken(1, "bob", "bob@example.com", secretKey, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	if _, err := VerifyToken(token, secretKey); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestVerifyTokenWrongKey(t *testing.T) {
	token, err := CreateJwtToken(1, "bob", "bob@example.com", []byte("key-one"), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	if _, err := VerifyToken(token, []byte("key-two")); err == nil {
		t.Fatal("expected error for wrong signing key, got nil")
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if err := CompareHashAndPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected matching password to compare, got %v", err)
	}
	if err := CompareHashAndPassword(hash, "wrong password"); err == nil {
		t.Error("expected mismatch error, got nil")
	}
}
