// Package profiles persists the per-user profile records.
package profiles

import (
	"context"

	"github.com/finweave/insight-server/internal/server/models"
)

// Repository provides access to profile records. The profiles table carries
// a unique constraint on user_id, so Upsert can never produce a second row
// for the same owner.
type Repository interface {
	// GetByUserID returns the profile owned by the given user or
	// common.ErrorNotFound.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)

	// Upsert atomically inserts the profile or, when a row for the owner
	// already exists, overwrites its descriptive fields. The stored record
	// is returned with timestamps filled in.
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}
