package notes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

func newNote(id, userID, title string) models.Note {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return models.Note{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Body:      "body of " + title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestListByUser_UnsetKeyReadsAsEmpty(t *testing.T) {
	r := NewKVRepository(kvstore.NewMemoryStore())

	notes, err := r.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestListByUser_FiltersByOwner(t *testing.T) {
	r := NewKVRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, newNote("n1", "alice", "A")))
	require.NoError(t, r.Save(ctx, newNote("n2", "bob", "B")))
	require.NoError(t, r.Save(ctx, newNote("n3", "alice", "C")))

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "n1", got[0].ID)
	assert.Equal(t, "n3", got[1].ID)

	got, err = r.ListByUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n2", got[0].ID)
}

func TestSave_UpsertReplacesFirstMatch(t *testing.T) {
	r := NewKVRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	first := newNote("n1", "alice", "first")
	require.NoError(t, r.Save(ctx, first))

	second := first
	second.Title = "second"
	second.UpdatedAt = first.UpdatedAt.Add(time.Minute)
	require.NoError(t, r.Save(ctx, second))

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Title)
	assert.Equal(t, first.CreatedAt, got[0].CreatedAt)
	assert.Equal(t, second.UpdatedAt, got[0].UpdatedAt)
}

func TestSave_RoundTripPreservesFields(t *testing.T) {
	r := NewKVRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	n := newNote("n1", "alice", "with image")
	n.Image = "file:///photos/cat.jpg"
	require.NoError(t, r.Save(ctx, n))

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, n, got[0])
}

func TestDelete_RemovesExactlyMatchingID(t *testing.T) {
	r := NewKVRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, newNote("n1", "alice", "A")))
	require.NoError(t, r.Save(ctx, newNote("n2", "bob", "B")))

	require.NoError(t, r.Delete(ctx, "n1"))

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)

	// other users' notes are untouched
	got, err = r.ListByUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n2", got[0].ID)
}

func TestDelete_MissingIDIsANoOp(t *testing.T) {
	r := NewKVRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, newNote("n1", "alice", "A")))
	require.NoError(t, r.Delete(ctx, "does-not-exist"))

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
