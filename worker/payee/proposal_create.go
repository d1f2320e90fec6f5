package payee

import (
	"context"
	"encoding/json"

	"diamond/core"
	"diamond/core/proposal"
	"diamond/pkg/mtg"

	"github.com/fox-one/pkg/logger"
)

// handleCreateProposalEvent create a proposal from a signed member payload
func (w *Payee) handleCreateProposalEvent(ctx context.Context, output *core.Output, member *core.Member, action core.ActionType, traceID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("worker", "create_proposal")

	p := core.Proposal{
		TraceID:   traceID,
		Creator:   member.ClientID,
		AssetID:   output.AssetID,
		Amount:    output.Amount,
		Action:    action,
		Version:   output.ID,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.CreatedAt,
	}

	switch p.Action {
	case core.ActionTypeProposalInitToken:
		var content proposal.TokenReq
		if _, err := mtg.Scan(body, &content); err != nil {
			log.WithError(err).Errorln("decode proposal InitToken content error")
			return nil
		}
		bs, err := json.Marshal(content)
		if err != nil {
			return err
		}
		p.Content = bs
	case core.ActionTypeProposalPause, core.ActionTypeProposalUnpause:
		p.Content = []byte("{}")
	case core.ActionTypeProposalAddBlacklist, core.ActionTypeProposalRemoveBlacklist:
		var content proposal.BlacklistReq
		if _, err := mtg.Scan(body, &content); err != nil {
			log.WithError(err).Errorln("decode proposal Blacklist content error")
			return nil
		}
		bs, err := json.Marshal(content)
		if err != nil {
			return err
		}
		p.Content = bs
	case core.ActionTypeProposalWithdraw:
		var content proposal.WithdrawReq
		if _, err := mtg.Scan(body, &content); err != nil {
			log.WithError(err).Errorln("decode proposal Withdraw content error")
			return nil
		}
		bs, err := json.Marshal(content)
		if err != nil {
			return err
		}
		p.Content = bs
	case core.ActionTypeProposalAddOracleSigner:
		var content proposal.AddOracleSignerReq
		if _, err := mtg.Scan(body, &content); err != nil {
			log.WithError(err).Errorln("decode proposal add oracle signer content err")
			return nil
		}
		bs, err := json.Marshal(content)
		if err != nil {
			return err
		}
		p.Content = bs
	case core.ActionTypeProposalRemoveOracleSigner:
		var content proposal.RemoveOracleSignerReq
		if _, err := mtg.Scan(body, &content); err != nil {
			log.WithError(err).Errorln("decode proposal remove oracle signer content err")
			return nil
		}
		bs, err := json.Marshal(content)
		if err != nil {
			return err
		}
		p.Content = bs
	default:
		log.Errorf("unknown proposal action %d", p.Action)
		return nil
	}

	if err := w.proposalStore.Create(ctx, &p); err != nil {
		log.WithError(err).Errorln("proposals.Create")
		return err
	}

	if err := w.proposalService.ProposalCreated(ctx, &p, member.ClientID); err != nil {
		log.WithError(err).Errorln("proposalService.ProposalCreated")
		return err
	}

	return nil
}
