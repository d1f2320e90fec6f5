package payee

import (
	"context"

	"diamond/core"
	"diamond/core/proposal"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/sirupsen/logrus"
)

// handleInitTokenEvent initialize the token state once.
//
// MaxSupply is immutable afterwards, replays and re-initializations
// are ignored.
func (w *Payee) handleInitTokenEvent(ctx context.Context, p *core.Proposal, req proposal.TokenReq, output *core.Output) error {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"proposal": "init-token",
		"asset":    req.AssetID,
	})

	token, err := w.tokenStore.Find(ctx)
	if err != nil {
		log.WithError(err).Errorln("tokens.Find")
		return err
	}

	if token.ID > 0 {
		log.Infoln("skip: token already initialized")
		return errProposalSkip
	}

	if !req.MaxSupply.IsPositive() ||
		req.InitialSupply.IsNegative() ||
		req.InitialSupply.GreaterThan(req.MaxSupply) {
		log.Errorln("skip: invalid supply bounds")
		return errProposalSkip
	}

	token = &core.Token{
		AssetID:     req.AssetID,
		Symbol:      req.Symbol,
		TotalSupply: req.InitialSupply,
		MaxSupply:   req.MaxSupply,
		Version:     output.ID,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.CreatedAt,
	}

	if err := w.db.Tx(func(tx *db.DB) error {
		return w.tokenStore.Save(ctx, tx, token)
	}); err != nil {
		log.WithError(err).Errorln("tokens.Save")
		return err
	}

	log.Infoln("token initialized")
	return nil
}
