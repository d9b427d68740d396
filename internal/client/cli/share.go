package cli

import (
	"context"

	"github.com/okuleshov/supportlist/internal/client/identity"
)

// Share prints the share links for the open list. The guest link grants
// read/update access; the owner link, printed only for owner sessions,
// additionally grants structural authority. Possession of a link is the
// entire access-control mechanism, so treat them accordingly.
func (a *App) Share(ctx context.Context) error {
	if a.session == nil {
		printlnFn("No list loaded.")
		return nil
	}

	guestLink, err := identity.GuestLink(a.config.LinkBase, a.session.ListID, a.session.GuestSecret)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Guest link:  " + guestLink)

	if a.isOwner() {
		ownerLink, err := identity.OwnerLink(a.config.LinkBase, a.session.ListID, a.session.GuestSecret, a.session.OwnerSecret)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		printlnFn("Owner link:  " + ownerLink)
	}
	return nil
}
