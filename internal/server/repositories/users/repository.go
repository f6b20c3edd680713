// Package users persists credential-store records.
package users

import (
	"context"

	"github.com/finweave/insight-server/internal/server/models"
)

// Repository provides access to user records.
type Repository interface {
	// Create inserts a new user. A duplicate email yields common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
