package rest

import (
	"errors"
	"net/http"

	"diamond/core"
	"diamond/handler/render"

	"github.com/shopspring/decimal"
)

// reserveHandler verify the vault balances cover the circulating supply.
// Every payment asset balance is converted into token units at its fixed
// price and summed against the total supply.
func reserveHandler(system *core.System, tokenStr core.ITokenStore, walletz core.IWalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, e := tokenStr.Find(ctx)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		if token.ID == 0 {
			render.NotFoundRequest(w, errors.New("token not initialized"))
			return
		}

		type reserveItem struct {
			AssetID    string          `json:"asset_id"`
			Symbol     string          `json:"symbol"`
			Balance    decimal.Decimal `json:"balance"`
			TokenUnits decimal.Decimal `json:"token_units"`
		}

		var (
			items   []reserveItem
			reserve decimal.Decimal
		)

		for _, asset := range system.PaymentAssets {
			balance, e := walletz.ReadAssetBalance(ctx, asset.AssetID)
			if e != nil {
				render.BadRequest(w, e)
				return
			}

			units := balance.Div(asset.Price).Truncate(8)
			reserve = reserve.Add(units)

			items = append(items, reserveItem{
				AssetID:    asset.AssetID,
				Symbol:     string(asset.Symbol),
				Balance:    balance,
				TokenUnits: units,
			})
		}

		ratio := decimal.Zero
		if token.TotalSupply.IsPositive() {
			ratio = reserve.Div(token.TotalSupply).Truncate(4)
		}

		render.JSON(w, render.H{
			"total_supply": token.TotalSupply,
			"reserve":      reserve,
			"ratio":        ratio,
			"sufficient":   reserve.GreaterThanOrEqual(token.TotalSupply),
			"assets":       items,
		})
	}
}
