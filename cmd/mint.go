package cmd

import (
	"encoding/base64"

	"diamond/core"
	"diamond/pkg/id"
	"diamond/pkg/mtg"

	"github.com/fox-one/pkg/qrcode"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// build a mint payment url for manual testing
var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "build a mint payment url",
	Long:  "asset for the payment asset id, amount for the payment amount",
	Run: func(cmd *cobra.Command, args []string) {
		system := provideSystem()
		walletz := provideWalletService(provideDapp())

		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("no payment asset id")
		}

		asset, ok := system.PaymentAssets.Find(assetID)
		if !ok {
			panic("unsupported payment asset")
		}

		amountStr, e := cmd.Flags().GetString("amount")
		if e != nil {
			panic(e)
		}
		amount, e := decimal.NewFromString(amountStr)
		if e != nil || amount.LessThan(asset.MinAmount) {
			panic("invalid amount")
		}

		follow, _ := uuid.NewV4()
		body, e := mtg.Encode(int(core.ActionTypeMint), follow)
		if e != nil {
			panic(e)
		}

		memoBytes, e := core.TransactionAction{Body: body}.Encode()
		if e != nil {
			panic(e)
		}
		memo := base64.StdEncoding.EncodeToString(memoBytes)

		url, e := walletz.PaySchemaURL(amount, asset.AssetID, system.ClientID, id.GenTraceID(), memo)
		if e != nil {
			panic(e)
		}

		cmd.Println("follow id:", follow.String())
		cmd.Println(url)
		qrcode.Fprint(cmd.OutOrStdout(), url)
	},
}

func init() {
	rootCmd.AddCommand(mintCmd)

	mintCmd.Flags().StringP("asset", "s", "", "payment asset id")
	mintCmd.Flags().StringP("amount", "q", "", "payment amount")
}
