package notes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// NotesKey is the fixed document key for the global notes collection.
const NotesKey = "notes_app_notes"

type KVRepository struct {
	store kvstore.Store
}

func NewKVRepository(store kvstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) loadAll(ctx context.Context) ([]models.Note, error) {
	data, err := r.store.Get(ctx, NotesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	if data == nil {
		return []models.Note{}, nil
	}

	var all []models.Note
	if err := json.Unmarshal(data, &all); err != nil {
		// A corrupt value reads as an empty collection.
		return []models.Note{}, nil
	}
	return all, nil
}

func (r *KVRepository) storeAll(ctx context.Context, all []models.Note) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := r.store.Set(ctx, NotesKey, data); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}
	return nil
}

func (r *KVRepository) ListByUser(ctx context.Context, userID string) ([]models.Note, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Note, 0, len(all))
	for _, n := range all {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (r *KVRepository) Save(ctx context.Context, note models.Note) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, n := range all {
		if n.ID == note.ID {
			all[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, note)
	}

	return r.storeAll(ctx, all)
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Note, 0, len(all))
	for _, n := range all {
		if n.ID != id {
			remaining = append(remaining, n)
		}
	}

	return r.storeAll(ctx, remaining)
}
