package payee

import (
	"context"
	"errors"

	"diamond/core"
	"diamond/internal/diamond"

	"github.com/fox-one/pkg/logger"
)

var errProposalSkip = errors.New("skip")

func (w *Payee) requireToken(ctx context.Context) (*core.Token, error) {
	log := logger.FromContext(ctx)

	token, err := w.tokenStore.Find(ctx)
	if err != nil {
		log.WithError(err).Errorln("tokens.Find")
		return nil, err
	}

	if err := diamond.Require(token.ID > 0, "payee/skip/token-not-initialized", diamond.FlagNoisy); err != nil {
		log.WithError(err).Infoln("skip")
		return nil, err
	}

	return token, nil
}

func (w *Payee) requireNotBlacklisted(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	entry, err := w.blacklistStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("blacklists.Find")
		return err
	}

	return diamond.Require(entry.ID == 0, "payee/blacklisted", diamond.FlagRefund)
}
