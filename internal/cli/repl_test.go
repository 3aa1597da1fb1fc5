package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string, args ...string) error {
	if len(args) > 0 {
		name += " " + strings.Join(args, " ")
	}
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                                { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error              { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error                 { return s.record("login") }
func (s *stubExec) List(ctx context.Context, args []string) error   { return s.record("list", args...) }
func (s *stubExec) Search(ctx context.Context) error                { return s.record("search") }
func (s *stubExec) Add(ctx context.Context) error                   { return s.record("add") }
func (s *stubExec) Show(ctx context.Context, args []string) error   { return s.record("show", args...) }
func (s *stubExec) Edit(ctx context.Context, args []string) error   { return s.record("edit", args...) }
func (s *stubExec) Delete(ctx context.Context, args []string) error { return s.record("delete", args...) }
func (s *stubExec) WhoAmI(ctx context.Context) error                { return s.record("whoami") }
func (s *stubExec) Logout(ctx context.Context) error                { return s.record("logout") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	return &lines
}

func runScript(t *testing.T, s *stubExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), s, func() string { return "test" }, scanner)
	return *lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{loggedIn: true}

	runScript(t, s, "list a-z\nsearch\nadd\nshow n1\nedit n1\ndelete n1\nwhoami\nlogout\nexit\n")

	assert.Equal(t, []string{
		"list a-z", "search", "add", "show n1", "edit n1", "delete n1", "whoami", "logout",
	}, s.calls)
}

func TestRunREPL_ListShortcut(t *testing.T) {
	s := &stubExec{loggedIn: true}

	runScript(t, s, "l\nexit\n")

	assert.Equal(t, []string{"list"}, s.calls)
}

func TestRunREPL_UnknownCommandIsReported(t *testing.T) {
	s := &stubExec{}

	out := runScript(t, s, "frobnicate\nexit\n")

	assert.Empty(t, s.calls)
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "Unknown command:")
	assert.Contains(t, joined, "frobnicate")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	loggedOut := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(loggedOut, "\n"), "register, login, exit")

	loggedIn := runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(loggedIn, "\n"), "logout")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}

	// no exit command; the scanner just runs dry
	runScript(t, s, "")

	assert.Empty(t, s.calls)
}

func TestRunREPL_BlankLinesAreSkipped(t *testing.T) {
	s := &stubExec{loggedIn: true}

	runScript(t, s, "\n\nwhoami\nquit\n")

	assert.Equal(t, []string{"whoami"}, s.calls)
}
