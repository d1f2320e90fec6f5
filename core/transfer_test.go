package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefundTransfer(t *testing.T) {
	output := &Output{
		TraceID: "a9bd4bd9-85ea-4172-8422-c969a07cecbc",
		Sender:  "bbf3bb1a-2b13-4db0-a51f-7f32b08e9a12",
		AssetID: "4d8c508b-91c5-375b-92b0-ee702ed2dac5",
		Amount:  decimal.NewFromFloat(10.5),
	}

	transfer, err := NewRefundTransfer(output, output.Sender, "c7a4e7da-1a61-41d7-9a75-a3ba7fcb8ae7", ActionTypeMint, ErrPaused)
	require.Nil(t, err)

	// the full payment goes back in the payment asset
	assert.Equal(t, output.AssetID, transfer.AssetID)
	assert.True(t, transfer.Amount.Equal(output.Amount))
	assert.Equal(t, output.Sender, transfer.OpponentID)
	assert.NotEqual(t, output.TraceID, transfer.TraceID)

	action, err := DecodeTransferAction(transfer.Memo)
	require.Nil(t, err)
	assert.Equal(t, ActionTypeRefundTransfer, action.Source)
	assert.Equal(t, ActionTypeMint, action.Origin)
	assert.Equal(t, ErrPaused, action.Code)
	assert.Equal(t, "c7a4e7da-1a61-41d7-9a75-a3ba7fcb8ae7", action.FollowID)
}

func TestNewMintTransfer(t *testing.T) {
	output := &Output{
		TraceID: "a9bd4bd9-85ea-4172-8422-c969a07cecbc",
		Sender:  "bbf3bb1a-2b13-4db0-a51f-7f32b08e9a12",
		AssetID: "4d8c508b-91c5-375b-92b0-ee702ed2dac5",
		Amount:  decimal.NewFromInt(100),
	}

	amount := decimal.NewFromInt(10)
	transfer, err := NewMintTransfer(output, output.Sender, "c7a4e7da-1a61-41d7-9a75-a3ba7fcb8ae7", "9b180ab6-6abe-3dc0-a13f-04169eb34bfa", amount)
	require.Nil(t, err)

	// minted tokens leave in the token asset, not the payment asset
	assert.Equal(t, "9b180ab6-6abe-3dc0-a13f-04169eb34bfa", transfer.AssetID)
	assert.True(t, transfer.Amount.Equal(amount))

	refund, err := NewRefundTransfer(output, output.Sender, "", ActionTypeMint, ErrPaused)
	require.Nil(t, err)
	assert.NotEqual(t, refund.TraceID, transfer.TraceID)
}
