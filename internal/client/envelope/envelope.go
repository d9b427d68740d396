// Package envelope implements selective per-item encryption for list
// snapshots. Sensitive fields (title, note, claimedBy) are folded into a
// single ciphertext carried in the wire title behind a fixed marker;
// status, order and id stay public so relays and legacy clients can
// still group and sort items.
//
// The symmetric key is the NIP-04 conversation key derived from one
// side's secret and the other side's public identifier. Derivation is
// symmetric (agree(skA, pkB) == agree(skB, pkA)), so any holder of the
// shared guest secret can decrypt events published by either party.
package envelope

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nbd-wtf/go-nostr/nip04"

	"github.com/okuleshov/supportlist/internal/client/models"
	"github.com/okuleshov/supportlist/internal/logging"
)

// Marker prefixes every encrypted wire title. Titles without it are
// legacy plaintext and must stay readable indefinitely.
const Marker = "encrypted:"

// PlaceholderTitle is shown for items whose ciphertext cannot be
// decrypted; the item itself stays in the list.
const PlaceholderTitle = "[Encrypted - Unable to decrypt]"

// payload is the plaintext embedded in the ciphertext blob.
type payload struct {
	Title     string `json:"title"`
	Note      string `json:"note,omitempty"`
	ClaimedBy string `json:"claimedBy,omitempty"`
}

// Codec encrypts and decrypts items. Encryption failures are logged and
// fail open; decryption failures are contained per item.
type Codec struct {
	log logging.Logger
}

func NewCodec(log logging.Logger) *Codec {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Codec{log: log}
}

// Encrypt returns a copy of item with its sensitive fields sealed
// against the recipient. An item whose title already carries the marker
// is returned unchanged, so re-saving an already-encrypted item never
// double-encrypts. On any failure the original item is returned with
// Encrypted=false; an encryption error must never block a save.
func (c *Codec) Encrypt(item models.Item, senderSecret, recipientPub string) models.Item {
	if strings.HasPrefix(item.Title, Marker) {
		return item
	}

	key, err := nip04.ComputeSharedSecret(recipientPub, senderSecret)
	if err != nil {
		return c.failOpen(item, err)
	}

	plain, err := json.Marshal(payload{Title: item.Title, Note: item.Note, ClaimedBy: item.ClaimedBy})
	if err != nil {
		return c.failOpen(item, err)
	}

	ciphertext, err := nip04.Encrypt(string(plain), key)
	if err != nil {
		return c.failOpen(item, err)
	}

	item.Title = Marker + ciphertext
	// Note and ClaimedBy now live inside the ciphertext; leaving copies
	// in the clear would defeat the envelope.
	item.Note = ""
	item.ClaimedBy = ""
	item.Encrypted = true
	return item
}

func (c *Codec) failOpen(item models.Item, err error) models.Item {
	c.log.Warn(context.Background(), "item encryption failed, saving plaintext", "item", item.ID, "error", err)
	item.Encrypted = false
	return item
}

// Decrypt restores the sensitive fields of an encrypted item. Items
// without the marker are legacy plaintext and pass through with
// Encrypted=false. A wrong key or corrupt blob yields a displayable
// item with the placeholder title; Decrypt never fails past this
// boundary.
func (c *Codec) Decrypt(item models.Item, recipientSecret, senderPub string) models.Item {
	if !strings.HasPrefix(item.Title, Marker) {
		item.Encrypted = false
		return item
	}

	ciphertext := strings.TrimPrefix(item.Title, Marker)

	key, err := nip04.ComputeSharedSecret(senderPub, recipientSecret)
	if err != nil {
		return failVisible(item)
	}

	plain, err := nip04.Decrypt(ciphertext, key)
	if err != nil {
		return failVisible(item)
	}

	var p payload
	if err := json.Unmarshal([]byte(plain), &p); err != nil {
		return failVisible(item)
	}

	item.Title = p.Title
	item.Note = p.Note
	item.ClaimedBy = p.ClaimedBy
	item.Encrypted = true
	return item
}

func failVisible(item models.Item) models.Item {
	item.Title = PlaceholderTitle
	item.Note = ""
	item.ClaimedBy = ""
	item.Encrypted = true
	return item
}
