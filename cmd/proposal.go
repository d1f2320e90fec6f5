package cmd

import (
	"context"
	"encoding"
	"encoding/base64"

	"diamond/core"
	"diamond/pkg/mtg"

	"github.com/fox-one/pkg/uuid"
	uuidutil "github.com/gofrs/uuid"
	"github.com/spf13/cobra"
)

// proposalCmd represents the proposal command
var proposalCmd = &cobra.Command{
	Use:     "proposal <command>",
	Aliases: []string{"pp"},
	Short:   "Manage Proposals",
	Long:    "Work With diamond Proposals",
}

func init() {
	rootCmd.AddCommand(proposalCmd)
}

// buildProposalTransferURL build a payment url carrying a signed member
// proposal payload. Any wallet can pay it, the member identity is taken
// from the signature.
func buildProposalTransferURL(ctx context.Context, system *core.System, walletz core.IWalletService, action core.ActionType, content encoding.BinaryMarshaler) (string, error) {
	clientID, err := uuidutil.FromString(system.ClientID)
	if err != nil {
		return "", err
	}

	data, err := mtg.Encode(clientID, int(action))
	if err != nil {
		return "", err
	}

	if content != nil {
		bts, err := content.MarshalBinary()
		if err != nil {
			return "", err
		}

		data = append(data, bts...)
	}

	sig, err := mtg.Sign(data, system.SignKey)
	if err != nil {
		return "", err
	}

	packed, err := mtg.Pack(data, sig)
	if err != nil {
		return "", err
	}

	memoBytes, err := core.TransactionAction{Body: packed}.Encode()
	if err != nil {
		return "", err
	}

	memo := base64.StdEncoding.EncodeToString(memoBytes)

	return walletz.PaySchemaURL(system.VoteAmount, system.VoteAsset, system.ClientID, uuid.New(), memo)
}
