package payee

import (
	"context"

	"diamond/core"
	"diamond/internal/diamond"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

func (w *Payee) handlePauseEvent(ctx context.Context, p *core.Proposal, output *core.Output) error {
	log := logger.FromContext(ctx).WithField("proposal", "pause")

	token, err := w.tokenStore.Find(ctx)
	if err != nil {
		log.WithError(err).Errorln("tokens.Find")
		return err
	}

	if token.ID == 0 {
		log.Infoln("skip: token not initialized")
		return errProposalSkip
	}

	if token.Version >= output.ID {
		return errProposalSkip
	}

	if token.Paused {
		log.Infoln("skip: already paused")
		return errProposalSkip
	}

	token.Paused = true
	token.PausedAt = output.CreatedAt

	if err := w.db.Tx(func(tx *db.DB) error {
		return w.tokenStore.Update(ctx, tx, token, output.ID)
	}); err != nil {
		log.WithError(err).Errorln("tokens.Update")
		return err
	}

	log.Infoln("token paused")
	return nil
}

func (w *Payee) handleUnpauseEvent(ctx context.Context, p *core.Proposal, output *core.Output) error {
	log := logger.FromContext(ctx).WithField("proposal", "unpause")

	token, err := w.tokenStore.Find(ctx)
	if err != nil {
		log.WithError(err).Errorln("tokens.Find")
		return err
	}

	if token.ID == 0 {
		log.Infoln("skip: token not initialized")
		return errProposalSkip
	}

	if token.Version >= output.ID {
		return errProposalSkip
	}

	if !token.Paused {
		log.Infoln("skip: not paused")
		return errProposalSkip
	}

	// a pause must hold for the cooldown window before it can be lifted
	if !diamond.CanUnpause(token.PausedAt, output.CreatedAt) {
		log.Infoln("skip: pause cooldown not elapsed")
		return errProposalSkip
	}

	token.Paused = false

	if err := w.db.Tx(func(tx *db.DB) error {
		return w.tokenStore.Update(ctx, tx, token, output.ID)
	}); err != nil {
		log.WithError(err).Errorln("tokens.Update")
		return err
	}

	log.Infoln("token unpaused")
	return nil
}
