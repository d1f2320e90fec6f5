package payee

import (
	"context"

	"diamond/core"
	"diamond/internal/diamond"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// handle mint event
func (w *Payee) handleMintEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("worker", "mint")

	token, err := w.requireToken(ctx)
	if err != nil {
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypeMint, core.ErrTokenNotInitialized)
	}

	if token.Version >= output.ID {
		log.Infoln("skip: output.ID outdated")
		return nil
	}

	if err := w.requireNotBlacklisted(ctx, userID); err != nil {
		log.WithError(err).Infoln("sender blacklisted")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypeMint, core.ErrBlacklisted)
	}

	if err := diamond.Require(!token.Paused, "payee/paused", diamond.FlagRefund); err != nil {
		log.WithError(err).Infoln("token paused")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypeMint, core.ErrPaused)
	}

	asset, ok := w.system.PaymentAssets.Find(output.AssetID)
	if err := diamond.Require(ok, "payee/unsupported-payment-asset", diamond.FlagRefund); err != nil {
		log.WithError(err).Infoln("unsupported payment asset")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypeMint, core.ErrUnsupportedPaymentAsset)
	}

	if err := diamond.Require(
		output.Amount.GreaterThanOrEqual(asset.MinAmount),
		"payee/amount-too-small",
		diamond.FlagRefund,
	); err != nil {
		log.WithError(err).Infoln("skip: amount too small")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypeMint, core.ErrAmountTooSmall)
	}

	rate, err := w.oracleService.GetRate(ctx, asset, output.CreatedAt)
	if err != nil {
		code, ok := err.(core.ErrorCode)
		if !ok {
			log.WithError(err).Errorln("oraclez.GetRate")
			return err
		}

		return w.handleRefundEvent(ctx, output, userID, followID, core.ActionTypeMint, code)
	}

	// minted amount rounds down, the dust stays with the vault
	amount := diamond.MintAmount(output.Amount, rate)
	if err := diamond.Require(amount.IsPositive(), "payee/zero-mint", diamond.FlagRefund); err != nil {
		log.WithError(err).Infoln("skip: zero mint amount")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypeMint, core.ErrInvalidAmount)
	}

	supply, ok := diamond.SupplyAfterMint(token.TotalSupply, amount, token.MaxSupply)
	if err := diamond.Require(ok, "payee/supply-cap-exceeded", diamond.FlagRefund); err != nil {
		log.WithError(err).Infoln("skip: supply cap exceeded")
		return w.returnOrRefundError(ctx, err, output, userID, followID, core.ActionTypeMint, core.ErrSupplyCapExceeded)
	}

	transfer, err := core.NewMintTransfer(output, userID, followID, token.AssetID, amount)
	if err != nil {
		log.WithError(err).Errorln("new mint transfer error")
		return err
	}

	// the mint settles atomically, payment accepted and token
	// delivery scheduled in one transaction keyed to the output
	if err := w.db.Tx(func(tx *db.DB) error {
		transaction, err := w.transactionStore.FindByTraceID(ctx, output.TraceID)
		if err != nil {
			return err
		}

		if transaction.ID == 0 {
			extra := core.NewTransactionExtra()
			extra.Put(core.TransactionKeyAmount, amount)
			extra.Put(core.TransactionKeyRate, rate)
			extra.Put(core.TransactionKeyTotalSupply, supply)

			transaction = core.BuildTransactionFromOutput(ctx, userID, followID, core.ActionTypeMint, output, &core.ContextSnapshot{
				Token:        token,
				PaymentAsset: asset,
			})
			transaction.SetExtraData(extra)
			transaction.Status = core.TransactionStatusComplete

			if err := w.transactionStore.Create(ctx, tx, transaction); err != nil {
				return err
			}
		}

		if err := w.walletStore.CreateTransfers(ctx, tx, []*core.Transfer{transfer}); err != nil {
			return err
		}

		token.TotalSupply = supply
		return w.tokenStore.Update(ctx, tx, token, output.ID)
	}); err != nil {
		log.WithError(err).Errorln("mint settle failed")
		return err
	}

	log.Infoln("mint completed")
	return nil
}
