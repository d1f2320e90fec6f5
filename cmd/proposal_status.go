package cmd

import (
	"diamond/core"

	"github.com/fox-one/pkg/qrcode"
	"github.com/spf13/cobra"
)

// governing command for pausing issuance
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "pause token issuance",
	Long:  "pause minting when the vault is under attack. pending payments are refunded while paused",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		system := provideSystem()
		walletz := provideWalletService(provideDapp())

		url, err := buildProposalTransferURL(ctx, system, walletz, core.ActionTypeProposalPause, nil)
		if err != nil {
			cmd.PrintErr(err)
			return
		}

		cmd.Println(url)
		qrcode.Fprint(cmd.OutOrStdout(), url)
	},
}

// governing command for resuming issuance
var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "resume token issuance",
	Long:  "resume minting after the cooldown window since the pause elapsed",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		system := provideSystem()
		walletz := provideWalletService(provideDapp())

		url, err := buildProposalTransferURL(ctx, system, walletz, core.ActionTypeProposalUnpause, nil)
		if err != nil {
			cmd.PrintErr(err)
			return
		}

		cmd.Println(url)
		qrcode.Fprint(cmd.OutOrStdout(), url)
	},
}

func init() {
	proposalCmd.AddCommand(pauseCmd)
	proposalCmd.AddCommand(unpauseCmd)
}
