package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

const bodyPreviewLen = 60

// requireUser returns the active user or reports to the terminal and fails.
func (a *App) requireUser() (*models.User, error) {
	u := a.auth.Current()
	if u == nil {
		color.Red("%s", common.ErrNotAuthenticated)
		return nil, common.ErrNotAuthenticated
	}
	return u, nil
}

func (a *App) printNoteLine(n models.Note) {
	preview := strings.ReplaceAll(n.Body, "\n", " ")
	if r := []rune(preview); len(r) > bodyPreviewLen {
		preview = string(r[:bodyPreviewLen]) + "…"
	}
	marker := " "
	if n.Image != "" {
		marker = "*"
	}
	fmt.Fprintf(a.out, "%s %s %s\n    %s\n",
		color.CyanString(n.ID),
		color.New(color.Bold).Sprint(n.Title),
		marker,
		preview)
}

func (a *App) printNotes(notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes yet")
		return
	}
	for _, n := range notes {
		a.printNoteLine(n)
	}
}

// List prints the user's notes. An optional first argument selects the sort
// order; unknown values fall back to newest-first.
func (a *App) List(ctx context.Context, args []string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	sortBy := models.SortNewest
	if len(args) > 0 {
		sortBy = models.ParseSortOption(args[0])
	}

	notes, err := a.notes.List(ctx, user.ID, "", sortBy)
	if err != nil {
		a.log.Error(ctx, "list failed", "error", err)
		return err
	}

	a.printNotes(notes)
	return nil
}

// Search prompts for a query and prints the matching notes.
func (a *App) Search(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	query, err := GetSimpleText(a.reader, "Search for", a.out)
	if err != nil {
		return err
	}

	notes, err := a.notes.List(ctx, user.ID, query, models.SortNewest)
	if err != nil {
		a.log.Error(ctx, "search failed", "error", err)
		return err
	}

	a.printNotes(notes)
	return nil
}

// Add prompts for the fields of a new note and saves it.
func (a *App) Add(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "Title (leave empty for \""+models.DefaultTitle+"\")", a.out)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Body", a.out)
	if err != nil {
		return err
	}
	image, err := GetSimpleText(a.reader, "Image path (leave empty to skip)", a.out)
	if err != nil {
		return err
	}

	saved, err := a.notes.Save(ctx, user.ID, models.Note{Title: title, Body: body, Image: image})
	if err != nil {
		if errors.Is(err, common.ErrEmptyNote) {
			color.Red("%s", err)
			return nil
		}
		a.log.Error(ctx, "save failed", "error", err)
		return err
	}

	color.Green("Saved %s", saved.ID)
	return nil
}

// noteID takes the id from args or prompts for it.
func (a *App) noteID(args []string, verb string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, "Enter note id to "+verb, a.out)
}

// Show prints a single note in full.
func (a *App) Show(ctx context.Context, args []string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := a.noteID(args, "show")
	if err != nil {
		return err
	}

	note, err := a.notes.Get(ctx, user.ID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			color.Red("Note not found")
			return nil
		}
		a.log.Error(ctx, "show failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, color.New(color.Bold).Sprint(note.Title))
	fmt.Fprintln(a.out, note.Body)
	if note.Image != "" {
		fmt.Fprintf(a.out, "Image: %s\n", note.Image)
	}
	fmt.Fprintf(a.out, "Created: %s  Updated: %s\n",
		note.CreatedAt.Format("2006-01-02 15:04"),
		note.UpdatedAt.Format("2006-01-02 15:04"))
	return nil
}

// Edit re-prompts the fields of an existing note. Empty input keeps the
// current value; entering "-" for the image clears it.
func (a *App) Edit(ctx context.Context, args []string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := a.noteID(args, "edit")
	if err != nil {
		return err
	}

	note, err := a.notes.Get(ctx, user.ID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			color.Red("Note not found")
			return nil
		}
		return err
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s] (empty keeps current)", note.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		note.Title = title
	}

	body, err := GetMultiline(a.reader, "Body (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if body != "" {
		note.Body = body
	}

	image, err := GetSimpleText(a.reader, fmt.Sprintf("Image [%s] (empty keeps current, \"-\" removes)", note.Image), a.out)
	if err != nil {
		return err
	}
	switch image {
	case "":
	case "-":
		note.Image = ""
	default:
		note.Image = image
	}

	saved, err := a.notes.Save(ctx, user.ID, *note)
	if err != nil {
		a.log.Error(ctx, "save failed", "error", err)
		return err
	}

	color.Green("Saved %s", saved.ID)
	return nil
}

// Delete removes a note after a confirmation prompt.
func (a *App) Delete(ctx context.Context, args []string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := a.noteID(args, "delete")
	if err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, "Delete this note? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.notes.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			color.Red("Note not found")
			return nil
		}
		a.log.Error(ctx, "delete failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}
