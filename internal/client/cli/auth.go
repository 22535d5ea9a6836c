package cli

import (
	"context"

	"github.com/dmitrijs2005/solarplan/internal/common"
)

// Register asks for an email and a password and creates the account. It
// does not log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.api.Register(ctx, email, string(password)); err != nil {
		a.showError(err)
		return err
	}

	a.println("Registered. You can now login.")
	return nil
}

// Login asks for credentials and keeps the returned identity for the
// session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.showError(err)
		return err
	}

	a.identity = id
	a.history.Clear()
	a.println("Logged in as", id.Email)
	return nil
}

// Logout forgets the identity and the session's estimates.
func (a *App) Logout(ctx context.Context) error {
	a.identity = nil
	a.history.Clear()
	a.println("Logged out.")
	return nil
}
