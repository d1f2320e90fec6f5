package payee

import (
	"context"

	"diamond/core"
	"diamond/core/proposal"
	"diamond/internal/diamond"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/fox-one/pkg/uuid"
	"github.com/sirupsen/logrus"
)

func (w *Payee) handleWithdrawEvent(ctx context.Context, p *core.Proposal, req proposal.WithdrawReq, output *core.Output) error {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"proposal": "withdraw",
		"asset":    req.Asset,
		"amount":   req.Amount,
	})

	amount := req.Amount.Truncate(diamond.TokenDecimals)
	if !amount.IsPositive() {
		log.Errorln("skip: invalid withdraw amount")
		return errProposalSkip
	}

	balance, err := w.walletz.ReadAssetBalance(ctx, req.Asset)
	if err != nil {
		log.WithError(err).Errorln("wallets.ReadAssetBalance")
		return err
	}

	if balance.LessThan(amount) {
		log.Errorln("skip: insufficient vault balance")
		return errProposalSkip
	}

	memo, err := core.TransferAction{
		Source: core.ActionTypeWithdrawTransfer,
		Origin: core.ActionTypeProposalWithdraw,
	}.Format()
	if err != nil {
		return err
	}

	transfer := &core.Transfer{
		TraceID:    uuid.Modify(p.TraceID, "withdraw"),
		OpponentID: req.Opponent,
		AssetID:    req.Asset,
		Amount:     amount,
		Memo:       memo,
	}

	if err := w.db.Tx(func(tx *db.DB) error {
		return w.walletStore.CreateTransfers(ctx, tx, []*core.Transfer{transfer})
	}); err != nil {
		log.WithError(err).Errorln("wallets.CreateTransfers")
		return err
	}

	log.Infoln("withdraw transfer created")
	return nil
}
