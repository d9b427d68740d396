package cli

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/okuleshov/supportlist/internal/client/identity"
)

// getSimpleText and getSecret are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Create makes a brand-new list: fresh owner and guest key pairs, a
// fresh list identifier, and the initial empty snapshot published under
// the owner identity. The share links are printed right away; the
// owner link is the only place the owner secret ever leaves the
// session.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter list title", os.Stdout)
	if err != nil {
		return err
	}

	owner, err := identity.Generate()
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	guest, err := identity.Generate()
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	session := identity.NewOwnerSession(uuid.NewString(), guest.Secret, owner.Secret)
	a.openSession(session)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.svc.Create(opCtx, title); err != nil {
		printlnFn(err.Error())
		_ = a.CloseList(ctx)
		return err
	}

	printlnFn("List created.")
	return a.Share(ctx)
}
