package cli

import (
	"context"
	"os"

	"github.com/okuleshov/supportlist/internal/client/identity"
)

// Open joins an existing list via a share link. The link decides the
// role: a link carrying the owner secret opens with structural
// authority, otherwise the session is a guest one.
func (a *App) Open(ctx context.Context) error {
	link, err := getSimpleText(a.reader, "Paste share link", os.Stdout)
	if err != nil {
		return err
	}

	params, err := identity.ParseLink(link)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	var session *identity.Session
	if params.OwnerSecret != "" {
		session = identity.NewOwnerSession(params.ListID, params.GuestSecret, params.OwnerSecret)
	} else {
		session = identity.NewGuestSession(params.ListID, params.GuestSecret)
	}
	a.openSession(session)

	if err := a.Reload(ctx); err != nil {
		_ = a.CloseList(ctx)
		return err
	}
	return nil
}
