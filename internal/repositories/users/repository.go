// Package users persists the registered-users collection as a single JSON
// array in the key-value store.
package users

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

type Repository interface {
	// List returns all stored users. An unset or unparseable value reads
	// as an empty list.
	List(ctx context.Context) ([]models.User, error)

	// Add appends the user to the collection and rewrites it. Username
	// uniqueness is the caller's responsibility.
	Add(ctx context.Context, user models.User) error

	// FindByUsername returns the first user with an exactly matching
	// username, scanning in list order, or (nil, nil) when absent.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
