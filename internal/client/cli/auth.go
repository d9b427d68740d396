package cli

import (
	"context"
	"os"

	"github.com/okuleshov/supportlist/internal/client/identity"
)

// Auth upgrades a guest session to an owner one. The supplied secret
// must match the list's declared owner identity; otherwise nothing
// about the session changes.
func (a *App) Auth(ctx context.Context) error {
	if !a.hasList() {
		printlnFn("No list loaded.")
		return nil
	}

	raw, err := getSecret(os.Stdout)
	if err != nil {
		return err
	}

	secret, err := identity.DecodeSecret(string(raw))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	candidate := identity.NewOwnerSession(a.session.ListID, a.session.GuestSecret, secret)
	if err := candidate.VerifyOwner(a.svc.Current()); err != nil {
		printlnFn(err.Error())
		return err
	}

	a.openSession(candidate)
	if err := a.Reload(ctx); err != nil {
		return err
	}
	printlnFn("Success!")
	return nil
}
