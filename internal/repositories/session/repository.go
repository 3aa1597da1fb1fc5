// Package session persists the single current-user slot: a denormalized
// copy of the full User record under its own key, independent of the users
// collection.
package session

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

type Repository interface {
	// Get returns the stored session user, or (nil, nil) when logged out.
	Get(ctx context.Context) (*models.User, error)

	// Set writes the session slot.
	Set(ctx context.Context, user models.User) error

	// Clear removes the key entirely.
	Clear(ctx context.Context) error
}
