package payee

import (
	"context"
	"errors"

	"diamond/core"
	"diamond/internal/diamond"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// returnOrRefundError refund the payment when the failure is tagged
// refundable, bubble the error otherwise
func (w *Payee) returnOrRefundError(ctx context.Context, err error, output *core.Output, userID, followID string, origin core.ActionType, errCode core.ErrorCode) error {
	var e *diamond.Error
	if errors.As(err, &e) {
		return w.handleRefundEvent(ctx, output, userID, followID, origin, errCode)
	}

	return err
}

// handle refund event
//
// Rejected payments are refunded in full, the error code travels in
// the transfer memo.
func (w *Payee) handleRefundEvent(ctx context.Context, output *core.Output, userID, followID string, origin core.ActionType, errCode core.ErrorCode) error {
	log := logger.FromContext(ctx).WithField("worker", "refund")

	transfer, e := core.NewRefundTransfer(output, userID, followID, origin, errCode)
	if e != nil {
		log.WithError(e).Errorln("new refund transfer error")
		return e
	}

	return w.db.Tx(func(tx *db.DB) error {
		transaction, err := w.transactionStore.FindByTraceID(ctx, output.TraceID)
		if err != nil {
			return err
		}

		if transaction.ID == 0 {
			extra := core.NewTransactionExtra()
			extra.Put(core.TransactionKeyErrorCode, errCode)
			extra.Put(core.TransactionKeyOrigin, origin.String())

			transaction = core.BuildTransactionFromOutput(ctx, userID, followID, origin, output, &core.ContextSnapshot{})
			transaction.SetExtraData(extra)
			transaction.Status = core.TransactionStatusAbort

			if err := w.transactionStore.Create(ctx, tx, transaction); err != nil {
				return err
			}
		}

		if err := w.walletStore.CreateTransfers(ctx, tx, []*core.Transfer{transfer}); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("wallets.CreateTransfers")
			return err
		}

		return nil
	})
}
