package cli

import (
	"context"
	"fmt"

	"github.com/freshkeep/freshkeep-cli/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for the new account's details and signs up via the
// session manager. The password byte slice is wiped before returning.
func (a *App) register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.sessions.Signup(ctx, email, string(password), name, ""); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, you are logged in.")
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.sessions.Login(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

func (a *App) logout(ctx context.Context) {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) whoami(ctx context.Context) {
	u := a.sessions.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	if u.Timezone != "" {
		fmt.Fprintf(a.out, "Timezone: %s\n", u.Timezone)
	}
}
