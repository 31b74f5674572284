// Package users persists resident accounts.
package users

import (
	"context"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills its ID and CreatedAt. A duplicate email
	// yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	MarkVerified(ctx context.Context, id string) error
}
