package models

import "time"

// DefaultTitle is substituted when a note is saved with a blank title.
const DefaultTitle = "Untitled"

// Note is a single note owned by a user. Ownership is by value equality on
// UserID; there is no back-pointer from User. Image is an optional locator
// (e.g. a file path) and is omitted from the stored document when empty.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SortOption selects a list ordering for notes.
type SortOption string

const (
	SortNewest  SortOption = "newest"
	SortOldest  SortOption = "oldest"
	SortTitleAZ SortOption = "a-z"
	SortTitleZA SortOption = "z-a"
)

// ParseSortOption maps a user-supplied string to a SortOption.
// Unknown or empty input falls back to SortNewest.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortOldest, SortTitleAZ, SortTitleZA:
		return SortOption(s)
	default:
		return SortNewest
	}
}
