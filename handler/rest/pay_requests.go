package rest

import (
	"encoding/base64"
	"errors"
	"net/http"

	"diamond/core"
	"diamond/handler/param"
	"diamond/handler/render"
	"diamond/pkg/mtg"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// payRequestsHandler build a mint payment for a wallet to scan
func payRequestsHandler(system *core.System, walletz core.IWalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID  string          `json:"asset_id,omitempty" valid:"uuid,required"`
			Amount   decimal.Decimal `json:"amount,omitempty"`
			TraceID  string          `json:"trace_id,omitempty" valid:"uuid,optional"`
			FollowID string          `json:"follow_id,omitempty" valid:"uuid,optional"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		asset, ok := system.PaymentAssets.Find(params.AssetID)
		if !ok {
			render.BadRequest(w, errors.New("unsupported payment asset"))
			return
		}

		if !params.Amount.IsPositive() || params.Amount.LessThan(asset.MinAmount) {
			render.BadRequest(w, errors.New("amount below minimum"))
			return
		}

		follow, err := uuid.FromString(params.FollowID)
		if err != nil || follow == uuid.Nil {
			follow, _ = uuid.NewV4()
		}

		traceID := params.TraceID
		if traceID == "" {
			trace, _ := uuid.NewV4()
			traceID = trace.String()
		}

		body, err := mtg.Encode(int(core.ActionTypeMint), follow)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		memoBytes, err := core.TransactionAction{Body: body}.Encode()
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		memo := base64.StdEncoding.EncodeToString(memoBytes)

		url, err := walletz.PaySchemaURL(params.Amount, asset.AssetID, system.ClientID, traceID, memo)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"url":       url,
			"trace_id":  traceID,
			"follow_id": follow.String(),
			"asset_id":  asset.AssetID,
			"amount":    params.Amount,
			"memo":      memo,
		})
	}
}
