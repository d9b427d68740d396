package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okuleshov/supportlist/internal/client/models"
	"github.com/okuleshov/supportlist/internal/common"
)

func TestGenerate_ProducesMatchingPair(t *testing.T) {
	kp, err := Generate()
	require.NoError(t, err)
	require.NotEmpty(t, kp.Secret)

	pk, err := PublicKey(kp.Secret)
	require.NoError(t, err)
	require.Equal(t, kp.Public, pk)
}

func TestDecodeSecret_RoundTripsBech32(t *testing.T) {
	kp, err := Generate()
	require.NoError(t, err)

	nsec, err := EncodeSecret(kp.Secret)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(nsec, "nsec"))

	back, err := DecodeSecret(nsec)
	require.NoError(t, err)
	require.Equal(t, kp.Secret, back)
}

func TestDecodeSecret_AcceptsHex(t *testing.T) {
	kp, err := Generate()
	require.NoError(t, err)

	back, err := DecodeSecret(kp.Secret)
	require.NoError(t, err)
	require.Equal(t, kp.Secret, back)
}

func TestDecodeSecret_RejectsGarbage(t *testing.T) {
	_, err := DecodeSecret("not-a-key")
	require.ErrorIs(t, err, common.ErrInvalidSecret)

	_, err = DecodeSecret("nsec1qqqqqqqq")
	require.ErrorIs(t, err, common.ErrInvalidSecret)
}

func TestSession_Roles(t *testing.T) {
	owner, err := Generate()
	require.NoError(t, err)
	guest, err := Generate()
	require.NoError(t, err)

	l := &models.List{OwnerPubkey: owner.Public, GuestPubkey: guest.Public}

	os := NewOwnerSession("lst", guest.Secret, owner.Secret)
	require.True(t, os.IsOwner())
	require.Equal(t, owner.Secret, os.SenderSecret())
	require.Equal(t, guest.Public, os.RecipientPubkey(l))
	require.NoError(t, os.VerifyOwner(l))

	gs := NewGuestSession("lst", guest.Secret)
	require.False(t, gs.IsOwner())
	require.Equal(t, guest.Secret, gs.SenderSecret())
	require.Equal(t, owner.Public, gs.RecipientPubkey(l))
	require.ErrorIs(t, gs.VerifyOwner(l), common.ErrInvalidOwnerKey)

	gp, err := gs.GuestPubkey()
	require.NoError(t, err)
	require.Equal(t, guest.Public, gp)
}

func TestSession_VerifyOwner_WrongKey(t *testing.T) {
	owner, err := Generate()
	require.NoError(t, err)
	other, err := Generate()
	require.NoError(t, err)

	l := &models.List{OwnerPubkey: owner.Public}
	s := NewOwnerSession("lst", owner.Secret, other.Secret)
	require.ErrorIs(t, s.VerifyOwner(l), common.ErrInvalidOwnerKey)
}
