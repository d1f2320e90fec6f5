package payee

import (
	"context"

	"diamond/core"
	"diamond/core/proposal"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

func (w *Payee) handleAddBlacklistEvent(ctx context.Context, p *core.Proposal, req proposal.BlacklistReq, output *core.Output) error {
	log := logger.FromContext(ctx).WithField("proposal", "add-blacklist")

	entry, err := w.blacklistStore.Find(ctx, req.UserID)
	if err != nil {
		log.WithError(err).Errorln("blacklists.Find")
		return err
	}

	if entry.ID > 0 {
		log.WithField("code", core.ErrDuplicateBlacklistEntry).Infoln("skip: user already blacklisted")
		return errProposalSkip
	}

	count, err := w.blacklistStore.Count(ctx)
	if err != nil {
		log.WithError(err).Errorln("blacklists.Count")
		return err
	}

	if count >= core.MaxBlacklistSize {
		log.WithField("code", core.ErrBlacklistCapacityExceeded).Errorln("skip: blacklist is full")
		return errProposalSkip
	}

	if err := w.db.Tx(func(tx *db.DB) error {
		return w.blacklistStore.Create(ctx, tx, &core.Blacklist{
			UserID:    req.UserID,
			CreatedAt: output.CreatedAt,
		})
	}); err != nil {
		log.WithError(err).Errorln("blacklists.Create")
		return err
	}

	log.WithField("user", req.UserID).Infoln("user blacklisted")
	return nil
}

func (w *Payee) handleRemoveBlacklistEvent(ctx context.Context, p *core.Proposal, req proposal.BlacklistReq, output *core.Output) error {
	log := logger.FromContext(ctx).WithField("proposal", "remove-blacklist")

	entry, err := w.blacklistStore.Find(ctx, req.UserID)
	if err != nil {
		log.WithError(err).Errorln("blacklists.Find")
		return err
	}

	if entry.ID == 0 {
		log.WithField("code", core.ErrAbsentBlacklistEntry).Infoln("skip: user not blacklisted")
		return errProposalSkip
	}

	if err := w.db.Tx(func(tx *db.DB) error {
		return w.blacklistStore.Delete(ctx, tx, req.UserID)
	}); err != nil {
		log.WithError(err).Errorln("blacklists.Delete")
		return err
	}

	log.WithField("user", req.UserID).Infoln("user removed from blacklist")
	return nil
}
