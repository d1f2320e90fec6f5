package core

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"diamond/pkg/mtg"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMemberProposalTransactionAction(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.Nil(t, err)

	member := &Member{
		ClientID:  "a9bd4bd9-85ea-4172-8422-c969a07cecbc",
		VerifyKey: pub,
	}

	clientID := uuid.FromStringOrNil(member.ClientID)
	body, err := mtg.Encode(clientID, int(ActionTypeProposalPause))
	require.Nil(t, err)

	t.Run("signed payload", func(t *testing.T) {
		sig, err := mtg.Sign(body, priv)
		require.Nil(t, err)

		packed, err := mtg.Pack(body, sig)
		require.Nil(t, err)

		m, action, _, err := DecodeMemberProposalTransactionAction(packed, []*Member{member})
		require.Nil(t, err)
		require.NotNil(t, m)
		assert.Equal(t, member.ClientID, m.ClientID)
		assert.Equal(t, ActionTypeProposalPause, action)
	})

	t.Run("tampered signature", func(t *testing.T) {
		sig := make([]byte, ed25519.SignatureSize)
		packed, err := mtg.Pack(body, sig)
		require.Nil(t, err)

		m, _, _, err := DecodeMemberProposalTransactionAction(packed, []*Member{member})
		if err == nil {
			// the raw fallback path may still resolve the member without
			// a signature, a signed route must not
			assert.Nil(t, m)
		}
	})

	t.Run("raw payload from member", func(t *testing.T) {
		m, action, _, err := DecodeMemberProposalTransactionAction(body, []*Member{member})
		require.Nil(t, err)
		require.NotNil(t, m)
		assert.Equal(t, ActionTypeProposalPause, action)
	})

	t.Run("non proposal action rejected", func(t *testing.T) {
		raw, err := mtg.Encode(clientID, int(ActionTypeMint))
		require.Nil(t, err)

		_, _, _, err = DecodeMemberProposalTransactionAction(raw, []*Member{member})
		assert.NotNil(t, err)
	})
}
