package identity

import (
	"github.com/okuleshov/supportlist/internal/client/models"
	"github.com/okuleshov/supportlist/internal/common"
)

// Session is the explicit per-list context passed to the publish
// pipeline: list id, role, and the secrets the role holds. It replaces
// any process-wide key state; its lifetime is the list-view lifetime.
//
// The guest secret is the shared access credential and is present for
// both roles (the owner link embeds it too). The owner secret is present
// only when the session was opened with structural authority.
type Session struct {
	ListID      string
	GuestSecret string
	OwnerSecret string
}

// NewGuestSession opens a session with shared access only.
func NewGuestSession(listID, guestSecret string) *Session {
	return &Session{ListID: listID, GuestSecret: guestSecret}
}

// NewOwnerSession opens a session with structural authority.
func NewOwnerSession(listID, guestSecret, ownerSecret string) *Session {
	return &Session{ListID: listID, GuestSecret: guestSecret, OwnerSecret: ownerSecret}
}

// IsOwner reports whether this session signs with the owner identity.
// The role is explicit; it is never inferred from published events.
func (s *Session) IsOwner() bool { return s.OwnerSecret != "" }

// SenderSecret is the signing/encrypting secret for outgoing snapshots.
func (s *Session) SenderSecret() string {
	if s.IsOwner() {
		return s.OwnerSecret
	}
	return s.GuestSecret
}

// GuestPubkey derives the guest public identifier used in discovery
// tags and query filters.
func (s *Session) GuestPubkey() (string, error) {
	return PublicKey(s.GuestSecret)
}

// RecipientPubkey is "the other participant" of the given list for this
// session's role; items are encrypted against it before publishing.
func (s *Session) RecipientPubkey(l *models.List) string {
	if s.IsOwner() {
		return l.GuestPubkey
	}
	return l.OwnerPubkey
}

// VerifyOwner checks that the session's owner secret actually matches
// the list's declared owner identity.
func (s *Session) VerifyOwner(l *models.List) error {
	if !s.IsOwner() {
		return common.ErrInvalidOwnerKey
	}
	pk, err := PublicKey(s.OwnerSecret)
	if err != nil || pk != l.OwnerPubkey {
		return common.ErrInvalidOwnerKey
	}
	return nil
}
