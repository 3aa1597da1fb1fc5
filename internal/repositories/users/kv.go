package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// UsersKey is the fixed document key for the users collection.
const UsersKey = "notes_app_users"

type KVRepository struct {
	store kvstore.Store
}

func NewKVRepository(store kvstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]models.User, error) {
	data, err := r.store.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if data == nil {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		// A corrupt value reads as an empty collection.
		return []models.User{}, nil
	}
	return users, nil
}

func (r *KVRepository) Add(ctx context.Context, user models.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	users = append(users, user)

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Set(ctx, UsersKey, data); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

func (r *KVRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}
