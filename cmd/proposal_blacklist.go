package cmd

import (
	"diamond/core"
	"diamond/core/proposal"

	"github.com/fox-one/pkg/qrcode"
	"github.com/spf13/cobra"
)

var addBlacklistCmd = &cobra.Command{
	Use:     "add-blacklist",
	Aliases: []string{"ab"},
	Short:   "add a user to the blacklist",
	Long:    "user for the blacklisted user id. blacklisted users get their payments refunded",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		system := provideSystem()
		walletz := provideWalletService(provideDapp())

		user, err := cmd.Flags().GetString("user")
		if err != nil || user == "" {
			cmd.PrintErrln("no user id")
			return
		}

		req := proposal.BlacklistReq{UserID: user}

		url, err := buildProposalTransferURL(ctx, system, walletz, core.ActionTypeProposalAddBlacklist, req)
		if err != nil {
			cmd.PrintErr(err)
			return
		}

		cmd.Println(url)
		qrcode.Fprint(cmd.OutOrStdout(), url)
	},
}

var removeBlacklistCmd = &cobra.Command{
	Use:     "rm-blacklist",
	Aliases: []string{"rb"},
	Short:   "remove a user from the blacklist",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		system := provideSystem()
		walletz := provideWalletService(provideDapp())

		user, err := cmd.Flags().GetString("user")
		if err != nil || user == "" {
			cmd.PrintErrln("no user id")
			return
		}

		req := proposal.BlacklistReq{UserID: user}

		url, err := buildProposalTransferURL(ctx, system, walletz, core.ActionTypeProposalRemoveBlacklist, req)
		if err != nil {
			cmd.PrintErr(err)
			return
		}

		cmd.Println(url)
		qrcode.Fprint(cmd.OutOrStdout(), url)
	},
}

func init() {
	proposalCmd.AddCommand(addBlacklistCmd)
	proposalCmd.AddCommand(removeBlacklistCmd)

	addBlacklistCmd.Flags().String("user", "", "user id to blacklist")
	removeBlacklistCmd.Flags().String("user", "", "user id to remove")
}
