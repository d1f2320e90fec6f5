package cmd

import (
	"diamond/core"
	"diamond/core/proposal"

	"github.com/fox-one/pkg/qrcode"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// governing command for the token state
var initTokenCmd = &cobra.Command{
	Use:     "init-token",
	Aliases: []string{"it"},
	Short:   "initialize token state",
	Long:    "asset for the token asset id, symbol for display, initial-supply for pre-minted amount, max-supply for the immutable cap",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		system := provideSystem()
		walletz := provideWalletService(provideDapp())

		asset, err := cmd.Flags().GetString("asset")
		if err != nil || asset == "" {
			cmd.PrintErrln("no token asset id")
			return
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil || symbol == "" {
			cmd.PrintErrln("no token symbol")
			return
		}

		initialSupply, err := decimal.NewFromString(cmd.Flag("initial-supply").Value.String())
		if err != nil {
			cmd.PrintErrln("invalid initial supply")
			return
		}

		maxSupply, err := decimal.NewFromString(cmd.Flag("max-supply").Value.String())
		if err != nil || !maxSupply.IsPositive() {
			cmd.PrintErrln("invalid max supply")
			return
		}

		req := proposal.TokenReq{
			AssetID:       asset,
			Symbol:        symbol,
			InitialSupply: initialSupply,
			MaxSupply:     maxSupply,
		}

		url, err := buildProposalTransferURL(ctx, system, walletz, core.ActionTypeProposalInitToken, req)
		if err != nil {
			cmd.PrintErr(err)
			return
		}

		cmd.Println(url)
		qrcode.Fprint(cmd.OutOrStdout(), url)
	},
}

func init() {
	proposalCmd.AddCommand(initTokenCmd)

	initTokenCmd.Flags().StringP("asset", "s", "", "token asset id")
	initTokenCmd.Flags().String("symbol", "", "token symbol")
	initTokenCmd.Flags().String("initial-supply", "0", "initial supply")
	initTokenCmd.Flags().String("max-supply", "", "max supply")
}
