package rest

import (
	"errors"
	"net/http"

	"diamond/core"
	"diamond/handler/render"
	"diamond/handler/views"
)

func tokenHandler(system *core.System, tokenStr core.ITokenStore, priceStr core.IPriceStore) http.HandlerFunc {
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

		view := views.TokenView(token)
		for _, asset := range system.PaymentAssets {
			assetView := views.PaymentAsset{
				AssetID:   asset.AssetID,
				Symbol:    string(asset.Symbol),
				Price:     asset.Price,
				MinAmount: asset.MinAmount,
			}

			if price, e := priceStr.Find(ctx, asset.AssetID); e == nil && price.ID > 0 {
				assetView.OraclePrice = price.Price
				assetView.OracleTime = &price.Timestamp
			}

			view.PaymentAssets = append(view.PaymentAssets, assetView)
		}

		render.JSON(w, view)
	}
}
