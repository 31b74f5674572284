package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotUserID, err := GetUserIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetUserIDFromToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "u3"}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := GetUserIDFromToken(tok, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_MissingUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUserIDFromToken(tok, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
