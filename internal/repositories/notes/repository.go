// Package notes persists the global notes collection as a single JSON array
// in the key-value store. The array is unpartitioned; per-user views are
// produced by filtering on read.
package notes

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

type Repository interface {
	// ListByUser reads the entire global list and returns the notes whose
	// UserID matches, in stored order.
	ListByUser(ctx context.Context, userID string) ([]models.Note, error)

	// Save upserts by note id: the first entry with the same id is
	// replaced, otherwise the note is appended, and the whole list is
	// rewritten. Last writer wins.
	Save(ctx context.Context, note models.Note) error

	// Delete removes every entry with the given id and rewrites the
	// remainder.
	Delete(ctx context.Context, id string) error
}
