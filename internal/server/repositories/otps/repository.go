// Package otps declares the server-side repository for one-time codes:
// account verification codes and password reset tokens.
package otps

import (
	"context"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

// Repository issues, looks up and consumes one-time codes.
type Repository interface {
	// Create stores a code hash for userID with an expiry of now+validity.
	Create(ctx context.Context, userID, purpose, codeHash string, validity time.Duration) error

	// FindActive returns the unused, unexpired code matching purpose and
	// hash, or common.ErrNotFound.
	FindActive(ctx context.Context, purpose, codeHash string) (*models.OTP, error)

	// LatestForUser returns the most recently issued code of purpose for
	// userID regardless of state, or common.ErrNotFound.
	LatestForUser(ctx context.Context, userID, purpose string) (*models.OTP, error)

	// MarkUsed consumes a code. Consuming an already used code yields
	// common.ErrNotFound.
	MarkUsed(ctx context.Context, id string) error
}
