package payee

import (
	"context"

	"diamond/core"
	"diamond/internal/diamond"
	"diamond/pkg/mtg"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
)

// handle purchase event
//
// Tokens spent on a purchase flow back to the vault, the total supply
// stays untouched.
func (w *Payee) handlePurchaseEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("worker", "purchase")

	token, err := w.requireToken(ctx)
	if err != nil {
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypePurchase, core.ErrTokenNotInitialized)
	}

	if err := diamond.Require(output.AssetID == token.AssetID, "payee/not-token-payment", diamond.FlagRefund); err != nil {
		log.WithError(err).Infoln("skip: purchase paid with foreign asset")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypePurchase, core.ErrUnsupportedPaymentAsset)
	}

	if err := w.requireNotBlacklisted(ctx, userID); err != nil {
		log.WithError(err).Infoln("sender blacklisted")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypePurchase, core.ErrBlacklisted)
	}

	if err := diamond.Require(!token.Paused, "payee/paused", diamond.FlagRefund); err != nil {
		log.WithError(err).Infoln("token paused")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypePurchase, core.ErrPaused)
	}

	var item uuid.UUID
	if _, err := mtg.Scan(body, &item); err != nil {
		log.WithError(err).Infoln("skip: no item id")
		return w.handleRefundEvent(ctx, output, userID, followID, core.ActionTypePurchase, core.ErrInvalidAmount)
	}

	return w.db.Tx(func(tx *db.DB) error {
		transaction, err := w.transactionStore.FindByTraceID(ctx, output.TraceID)
		if err != nil {
			return err
		}

		if transaction.ID > 0 {
			return nil
		}

		extra := core.NewTransactionExtra()
		extra.Put(core.TransactionKeyAmount, output.Amount)
		extra.Put("item_id", item.String())

		transaction = core.BuildTransactionFromOutput(ctx, userID, followID, core.ActionTypePurchase, output, &core.ContextSnapshot{Token: token})
		transaction.SetExtraData(extra)
		transaction.Status = core.TransactionStatusComplete

		if err := w.transactionStore.Create(ctx, tx, transaction); err != nil {
			log.WithError(err).Errorln("transactions.Create")
			return err
		}

		return nil
	})
}
