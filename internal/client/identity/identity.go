// Package identity wraps key-pair handling for list participants: key
// generation, transportable (bech32) secret encoding, public-key
// derivation, and the per-list session context.
package identity

import (
	"fmt"
	"strings"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"

	"github.com/okuleshov/supportlist/internal/common"
)

// KeyPair holds one participant identity. Both fields are hex-encoded.
type KeyPair struct {
	Secret string
	Public string
}

// Generate creates a fresh key pair.
func Generate() (KeyPair, error) {
	sk := nostr.GeneratePrivateKey()
	pk, err := nostr.GetPublicKey(sk)
	if err != nil {
		return KeyPair{}, fmt.Errorf("deriving public key: %w", err)
	}
	return KeyPair{Secret: sk, Public: pk}, nil
}

// DecodeSecret accepts a secret in transportable bech32 form ("nsec...")
// or raw hex and returns the hex form. Anything that does not yield a
// usable key is rejected with common.ErrInvalidSecret.
func DecodeSecret(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "nsec") {
		prefix, value, err := nip19.Decode(s)
		if err != nil || prefix != "nsec" {
			return "", common.ErrInvalidSecret
		}
		return value.(string), nil
	}
	if _, err := nostr.GetPublicKey(s); err != nil {
		return "", common.ErrInvalidSecret
	}
	return s, nil
}

// EncodeSecret renders a hex secret in transportable bech32 form.
func EncodeSecret(hexSecret string) (string, error) {
	return nip19.EncodePrivateKey(hexSecret)
}

// PublicKey derives the public identifier for a hex secret.
func PublicKey(hexSecret string) (string, error) {
	pk, err := nostr.GetPublicKey(hexSecret)
	if err != nil {
		return "", common.ErrInvalidSecret
	}
	return pk, nil
}
