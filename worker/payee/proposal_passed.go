package payee

import (
	"context"
	"encoding/json"

	"diamond/core"
	"diamond/core/proposal"
)

func (w *Payee) handlePassedProposal(ctx context.Context, p *core.Proposal, output *core.Output) error {
	if err := w.handlePassedProposalInternal(ctx, p, output); err != nil {
		if err == errProposalSkip {
			return nil
		}

		return err
	}

	return nil
}

func (w *Payee) handlePassedProposalInternal(ctx context.Context, p *core.Proposal, output *core.Output) error {
	switch p.Action {
	case core.ActionTypeProposalInitToken:
		var req proposal.TokenReq
		if err := json.Unmarshal(p.Content, &req); err != nil {
			return err
		}
		return w.handleInitTokenEvent(ctx, p, req, output)

	case core.ActionTypeProposalPause:
		return w.handlePauseEvent(ctx, p, output)

	case core.ActionTypeProposalUnpause:
		return w.handleUnpauseEvent(ctx, p, output)

	case core.ActionTypeProposalAddBlacklist:
		var req proposal.BlacklistReq
		if err := json.Unmarshal(p.Content, &req); err != nil {
			return err
		}
		return w.handleAddBlacklistEvent(ctx, p, req, output)

	case core.ActionTypeProposalRemoveBlacklist:
		var req proposal.BlacklistReq
		if err := json.Unmarshal(p.Content, &req); err != nil {
			return err
		}
		return w.handleRemoveBlacklistEvent(ctx, p, req, output)

	case core.ActionTypeProposalWithdraw:
		var req proposal.WithdrawReq
		if err := json.Unmarshal(p.Content, &req); err != nil {
			return err
		}
		return w.handleWithdrawEvent(ctx, p, req, output)

	case core.ActionTypeProposalAddOracleSigner:
		var req proposal.AddOracleSignerReq
		if err := json.Unmarshal(p.Content, &req); err != nil {
			return err
		}
		return w.handleAddOracleSignerEvent(ctx, p, req, output)

	case core.ActionTypeProposalRemoveOracleSigner:
		var req proposal.RemoveOracleSignerReq
		if err := json.Unmarshal(p.Content, &req); err != nil {
			return err
		}
		return w.handleRemoveOracleSignerEvent(ctx, p, req, output)
	}

	return nil
}
