package envelope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okuleshov/supportlist/internal/client/identity"
	"github.com/okuleshov/supportlist/internal/client/models"
)

func pair(t *testing.T) (identity.KeyPair, identity.KeyPair) {
	t.Helper()
	owner, err := identity.Generate()
	require.NoError(t, err)
	guest, err := identity.Generate()
	require.NoError(t, err)
	return owner, guest
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	owner, guest := pair(t)
	c := NewCodec(nil)

	item := models.Item{ID: "a", Title: "Secret", Note: "x", ClaimedBy: "Bob", Status: models.StatusClaimed, Order: 3}

	enc := c.Encrypt(item, owner.Secret, guest.Public)
	require.True(t, enc.Encrypted)
	require.True(t, strings.HasPrefix(enc.Title, Marker))
	require.Empty(t, enc.Note, "note must not remain in the clear")
	require.Empty(t, enc.ClaimedBy, "claimedBy must not remain in the clear")
	require.Equal(t, models.StatusClaimed, enc.Status)
	require.Equal(t, 3, enc.Order)
	require.Equal(t, "a", enc.ID)

	// role-reversed key derivation: guest secret + owner public
	dec := c.Decrypt(enc, guest.Secret, owner.Public)
	require.True(t, dec.Encrypted)
	require.Equal(t, "Secret", dec.Title)
	require.Equal(t, "x", dec.Note)
	require.Equal(t, "Bob", dec.ClaimedBy)
}

func TestEncrypt_IsIdempotent(t *testing.T) {
	owner, guest := pair(t)
	c := NewCodec(nil)

	item := models.Item{ID: "a", Title: "Secret"}
	once := c.Encrypt(item, owner.Secret, guest.Public)
	twice := c.Encrypt(once, owner.Secret, guest.Public)

	require.Equal(t, once, twice)
}

func TestDecrypt_LegacyPlaintextPassesThrough(t *testing.T) {
	owner, guest := pair(t)
	c := NewCodec(nil)

	item := models.Item{ID: "a", Title: "Pack boxes", Note: "garage first", Encrypted: true}
	dec := c.Decrypt(item, guest.Secret, owner.Public)

	require.False(t, dec.Encrypted)
	require.Equal(t, "Pack boxes", dec.Title)
	require.Equal(t, "garage first", dec.Note)
}

func TestDecrypt_WrongKeyYieldsPlaceholder(t *testing.T) {
	owner, guest := pair(t)
	stranger, err := identity.Generate()
	require.NoError(t, err)
	c := NewCodec(nil)

	enc := c.Encrypt(models.Item{ID: "a", Title: "Secret", Note: "x"}, owner.Secret, guest.Public)

	dec := c.Decrypt(enc, stranger.Secret, owner.Public)
	require.Equal(t, PlaceholderTitle, dec.Title)
	require.Empty(t, dec.Note)
	require.Empty(t, dec.ClaimedBy)
	require.True(t, dec.Encrypted)
	require.Equal(t, "a", dec.ID, "item must stay displayable under its id")
}

func TestDecrypt_CorruptCiphertextYieldsPlaceholder(t *testing.T) {
	owner, guest := pair(t)
	c := NewCodec(nil)

	item := models.Item{ID: "a", Title: Marker + "zm9v?iv=not-base64"}
	dec := c.Decrypt(item, guest.Secret, owner.Public)

	require.Equal(t, PlaceholderTitle, dec.Title)
}

func TestEncrypt_BadRecipientFailsOpen(t *testing.T) {
	owner, _ := pair(t)
	c := NewCodec(nil)

	item := models.Item{ID: "a", Title: "Secret", Note: "x"}
	out := c.Encrypt(item, owner.Secret, "not-a-pubkey")

	require.False(t, out.Encrypted)
	require.Equal(t, "Secret", out.Title)
	require.Equal(t, "x", out.Note)
}

func TestSharedSecret_SymmetryAcrossRoles(t *testing.T) {
	owner, guest := pair(t)
	c := NewCodec(nil)

	// Encrypted by the guest, decrypted with the guest secret against
	// the owner's public id, the path reconciliation always takes.
	enc := c.Encrypt(models.Item{ID: "a", Title: "Secret"}, guest.Secret, owner.Public)
	dec := c.Decrypt(enc, guest.Secret, owner.Public)
	require.Equal(t, "Secret", dec.Title)
}
