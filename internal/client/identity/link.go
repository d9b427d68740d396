package identity

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/okuleshov/supportlist/internal/common"
)

// Share links carry the access credentials in the URL fragment so they
// never reach a web server's logs:
//
//	<base>#list=<id>&guest=<nsec...>            guest link
//	<base>#list=<id>&guest=<nsec...>&owner=<nsec...>  owner link
//
// Possession of the embedded secret is the entire access-control
// mechanism; there is no further authentication.

// LinkParams is the decoded content of a share link. Secrets are hex.
type LinkParams struct {
	ListID      string
	GuestSecret string
	OwnerSecret string
}

// GuestLink builds a link granting shared read/update access.
func GuestLink(base, listID, guestSecret string) (string, error) {
	return buildLink(base, listID, guestSecret, "")
}

// OwnerLink builds a link additionally granting structural authority.
func OwnerLink(base, listID, guestSecret, ownerSecret string) (string, error) {
	return buildLink(base, listID, guestSecret, ownerSecret)
}

func buildLink(base, listID, guestSecret, ownerSecret string) (string, error) {
	guest, err := EncodeSecret(guestSecret)
	if err != nil {
		return "", fmt.Errorf("encoding guest secret: %w", err)
	}

	v := url.Values{}
	v.Set("list", listID)
	v.Set("guest", guest)
	if ownerSecret != "" {
		owner, err := EncodeSecret(ownerSecret)
		if err != nil {
			return "", fmt.Errorf("encoding owner secret: %w", err)
		}
		v.Set("owner", owner)
	}

	return strings.TrimRight(base, "#") + "#" + v.Encode(), nil
}

// ParseLink decodes a share link. The guest secret is mandatory; a
// missing list id falls back to the well-known default.
func ParseLink(raw string) (*LinkParams, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing link: %w", err)
	}
	v, err := url.ParseQuery(u.Fragment)
	if err != nil {
		return nil, fmt.Errorf("parsing link fragment: %w", err)
	}

	if v.Get("guest") == "" {
		return nil, common.ErrInvalidSecret
	}
	guest, err := DecodeSecret(v.Get("guest"))
	if err != nil {
		return nil, err
	}

	p := &LinkParams{ListID: v.Get("list"), GuestSecret: guest}
	if p.ListID == "" {
		p.ListID = common.DefaultListID
	}

	if o := v.Get("owner"); o != "" {
		owner, err := DecodeSecret(o)
		if err != nil {
			return nil, err
		}
		p.OwnerSecret = owner
	}

	return p, nil
}
