// Package cryptox wraps the hashing primitives the server relies on:
// password hashing, one-time codes and digests of bearer-style secrets.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for stored passwords.
var PasswordCost = 12

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewOTP returns a uniformly random numeric code of the given length.
func NewOTP(digits int) (string, error) {
	if digits <= 0 {
		return "", errors.New("otp length must be positive")
	}
	var sb strings.Builder
	sb.Grow(digits)
	ten := big.NewInt(10)
	for range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("otp: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

// HashToken returns the hex SHA-256 of a secret so only digests hit the
// database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
