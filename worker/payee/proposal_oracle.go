package payee

import (
	"context"
	"encoding/base64"

	"diamond/core"
	"diamond/core/proposal"

	"github.com/fox-one/pkg/logger"
	"github.com/pandodao/blst"
	"github.com/sirupsen/logrus"
)

func (w *Payee) handleAddOracleSignerEvent(ctx context.Context, p *core.Proposal, req proposal.AddOracleSignerReq, output *core.Output) error {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"proposal": "add-oracle-signer",
		"user":     req.UserID,
	})

	bts, err := base64.StdEncoding.DecodeString(req.PublicKey)
	if err != nil {
		log.WithError(err).Errorln("skip: decode public key failed")
		return errProposalSkip
	}

	var pub blst.PublicKey
	if err := pub.FromBytes(bts); err != nil {
		log.WithError(err).Errorln("skip: invalid bls public key")
		return errProposalSkip
	}

	if err := w.oracleSignerStore.Save(ctx, req.UserID, req.PublicKey); err != nil {
		log.WithError(err).Errorln("oracle_signers.Save")
		return err
	}

	log.Infoln("oracle signer added")
	return nil
}

func (w *Payee) handleRemoveOracleSignerEvent(ctx context.Context, p *core.Proposal, req proposal.RemoveOracleSignerReq, output *core.Output) error {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"proposal": "remove-oracle-signer",
		"user":     req.UserID,
	})

	if err := w.oracleSignerStore.Delete(ctx, req.UserID); err != nil {
		log.WithError(err).Errorln("oracle_signers.Delete")
		return err
	}

	log.Infoln("oracle signer removed")
	return nil
}
