// Package cli implements the interactive terminal front end of notekeeper.
// It consumes the auth and note services exclusively through their public
// interfaces; all persistence happens behind them.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/notekeeper/internal/config"
	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	notesrepo "github.com/dmitrijs2005/notekeeper/internal/repositories/notes"
	sessionrepo "github.com/dmitrijs2005/notekeeper/internal/repositories/session"
	usersrepo "github.com/dmitrijs2005/notekeeper/internal/repositories/users"
	"github.com/dmitrijs2005/notekeeper/internal/services"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	notes  services.NoteService
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the on-device store and wires the services over it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, cfg.DatabaseFile)
	db, err := kvstore.OpenDatabase(ctx, path)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", path, "error", err)
		return nil, err
	}
	log.Debug(ctx, "database ready", "path", path)

	store := kvstore.NewSQLiteStore(db)
	auth := services.NewAuthService(usersrepo.NewKVRepository(store), sessionrepo.NewKVRepository(store), log)
	notes := services.NewNoteService(notesrepo.NewKVRepository(store), log)

	return &App{
		config: cfg,
		auth:   auth,
		notes:  notes,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run restores a previously stored session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	if _, err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	printlnFn("notekeeper (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) status() string {
	if u := a.auth.Current(); u != nil {
		return u.Username
	}
	return "guest"
}
