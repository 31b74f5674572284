package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MakeRandHexString returns a hex token built from size random bytes
// (2*size characters). Used for password reset tokens.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("random token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
