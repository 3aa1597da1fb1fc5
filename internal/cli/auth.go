package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// Register prompts for credentials and creates an account. A successful
// registration also starts a session, mirroring a successful login.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Create a password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm your password", a.out)
	if err != nil {
		return err
	}

	if !bytes.Equal(password, confirm) {
		color.Red("Passwords do not match")
		return nil
	}

	user, err := a.auth.Signup(ctx, username, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyCredentials),
			errors.Is(err, common.ErrPasswordTooShort),
			errors.Is(err, common.ErrUsernameTaken):
			color.Red("%s", err)
			return nil
		default:
			a.log.Error(ctx, "signup failed", "error", err)
			return err
		}
	}

	color.Green("Welcome, %s!", user.Username)
	return nil
}

// Login prompts for credentials and authenticates. Unknown usernames and
// wrong passwords produce the same message.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			color.Red("Invalid username or password")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	color.Green("Welcome back, %s!", user.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (since %s)\n", u.Username, u.CreatedAt.Format("2006-01-02"))
	return nil
}
