package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/repositories/notes"
)

// nowFn is a test seam for the save timestamp.
var nowFn = func() time.Time { return time.Now().UTC() }

// NoteService exposes the note operations of the application, always scoped
// to an owning user id.
type NoteService interface {
	// List returns the user's notes, optionally filtered by a
	// case-insensitive substring match over title and body, ordered by the
	// given sort option.
	List(ctx context.Context, userID, query string, sortBy models.SortOption) ([]models.Note, error)

	// Save upserts a note for the user. A note without an id is created
	// (fresh id and CreatedAt); an existing note keeps its CreatedAt.
	// UpdatedAt is always refreshed. A blank title becomes
	// models.DefaultTitle; a note with neither title nor body is rejected.
	Save(ctx context.Context, userID string, note models.Note) (*models.Note, error)

	// Get returns the user's note with the given id, or common.ErrNotFound
	// (also when the id exists but belongs to someone else).
	Get(ctx context.Context, userID, id string) (*models.Note, error)

	// Delete removes the user's note with the given id.
	Delete(ctx context.Context, userID, id string) error
}

type noteService struct {
	notes notes.Repository
	log   logging.Logger
}

// NewNoteService constructs a NoteService over the given repository.
func NewNoteService(notes notes.Repository, log logging.Logger) NoteService {
	return &noteService{notes: notes, log: log.With("component", "notes")}
}

func (s *noteService) List(ctx context.Context, userID, query string, sortBy models.SortOption) ([]models.Note, error) {
	all, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	result := all
	if query != "" {
		q := strings.ToLower(query)
		result = make([]models.Note, 0, len(all))
		for _, n := range all {
			if strings.Contains(strings.ToLower(n.Title), q) ||
				strings.Contains(strings.ToLower(n.Body), q) {
				result = append(result, n)
			}
		}
	}

	sortNotes(result, sortBy)
	return result, nil
}

func sortNotes(list []models.Note, sortBy models.SortOption) {
	switch sortBy {
	case models.SortOldest:
		sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.Before(list[j].UpdatedAt) })
	case models.SortTitleAZ:
		sort.Slice(list, func(i, j int) bool {
			return strings.ToLower(list[i].Title) < strings.ToLower(list[j].Title)
		})
	case models.SortTitleZA:
		sort.Slice(list, func(i, j int) bool {
			return strings.ToLower(list[i].Title) > strings.ToLower(list[j].Title)
		})
	default: // SortNewest
		sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	}
}

func (s *noteService) Save(ctx context.Context, userID string, note models.Note) (*models.Note, error) {
	note.Title = strings.TrimSpace(note.Title)
	note.Body = strings.TrimSpace(note.Body)

	if note.Title == "" && note.Body == "" {
		return nil, common.ErrEmptyNote
	}
	if note.Title == "" {
		note.Title = models.DefaultTitle
	}

	now := nowFn()
	if note.ID == "" {
		note.ID = uuid.NewString()
		note.CreatedAt = now
	} else {
		existing, err := s.Get(ctx, userID, note.ID)
		if err != nil {
			return nil, err
		}
		note.CreatedAt = existing.CreatedAt
	}

	note.UserID = userID
	note.UpdatedAt = now

	if err := s.notes.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}

	s.log.Debug(ctx, "note saved", "id", note.ID)
	return &note, nil
}

func (s *noteService) Get(ctx context.Context, userID, id string) (*models.Note, error) {
	all, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	for _, n := range all {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *noteService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.Debug(ctx, "note deleted", "id", id)
	return nil
}
