// Package snapshot serializes full list snapshots to and from the event
// content format. Deserialization is deliberately tolerant: snapshots
// written by older versions of the protocol may miss fields, and a
// malformed event must be droppable without failing the whole load.
package snapshot

import (
	"encoding/json"

	"github.com/okuleshov/supportlist/internal/client/models"
)

// UntitledTitle substitutes a missing list title.
const UntitledTitle = "Untitled list"

// Serialize renders the snapshot as deterministic JSON. Items are taken
// verbatim; the caller has already encrypted them.
func Serialize(l *models.List) (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Deserialize parses event content into a snapshot. A parse error
// returns nil, which marks the event unusable without being a hard
// failure. Missing fields are defaulted: title to UntitledTitle, items
// to an empty slice, and ownerPubkey to the event signer's identifier
// (snapshots predating the explicit owner field).
func Deserialize(content string, fallbackOwner string) *models.List {
	var l models.List
	if err := json.Unmarshal([]byte(content), &l); err != nil {
		return nil
	}
	if l.Title == "" {
		l.Title = UntitledTitle
	}
	if l.Items == nil {
		l.Items = []models.Item{}
	}
	if l.OwnerPubkey == "" {
		l.OwnerPubkey = fallbackOwner
	}
	return &l
}
