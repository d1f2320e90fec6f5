package payee

import (
	"context"
	"database/sql"
	"encoding"
	"encoding/json"
	"fmt"

	"diamond/core"
	"diamond/core/proposal"
	"diamond/pkg/mtg"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
	"github.com/gofrs/uuid"
)

func (w *Payee) handleMakeProposal(ctx context.Context, output *core.Output, message []byte) error {
	log := logger.FromContext(ctx).WithField("handler", "proposal_make")

	if !w.system.IsMember(output.Sender) {
		log.WithField("code", core.ErrOperationForbidden).Debugln("skip: sender is not a member")
		return nil
	}

	var action core.ActionType
	{
		var v int
		body, err := mtg.Scan(message, &v)
		if err != nil {
			log.WithError(err).Errorln("scan action failed")
			return nil
		}
		action = core.ActionType(v)
		message = body
	}

	if !action.IsProposalAction() {
		return nil
	}

	proposal, err := w.buildProposal(ctx, output, action, message)
	if proposal == nil || err != nil {
		return err
	}

	if err := w.proposalStore.Create(ctx, proposal); err != nil {
		log.WithError(err).Errorln("proposals.Create")
		return err
	}

	if err := w.proposalService.ProposalCreated(ctx, proposal, output.Sender); err != nil {
		log.WithError(err).Errorln("proposalService.ProposalCreated")
		return err
	}

	return nil
}

func (w *Payee) handleShoutProposal(ctx context.Context, output *core.Output, message []byte) error {
	log := logger.FromContext(ctx).WithField("handler", "proposal_shout")

	if !w.system.IsMember(output.Sender) {
		return nil
	}

	var trace uuid.UUID
	if _, err := mtg.Scan(message, &trace); err != nil {
		log.WithError(err).Errorln("scan proposal trace failed")
		return nil
	}

	proposal, isNotFound, err := w.proposalStore.Find(ctx, trace.String())
	if err != nil {
		if isNotFound {
			log.WithError(err).Debugln("proposal not found")
			return nil
		}

		log.WithError(err).Errorln("proposals.Find")
		return err
	}

	if err := w.proposalService.ProposalCreated(ctx, proposal, output.Sender); err != nil {
		log.WithError(err).Errorln("proposalService.ProposalCreated")
		return err
	}

	return nil
}

func (w *Payee) handleVoteProposal(ctx context.Context, output *core.Output, message []byte) error {
	log := logger.FromContext(ctx).WithField("handler", "proposal_vote")

	if !w.system.IsMember(output.Sender) {
		return nil
	}

	var trace uuid.UUID
	if _, err := mtg.Scan(message, &trace); err != nil {
		log.WithError(err).Errorln("scan proposal trace failed")
		return nil
	}

	p, isNotFound, err := w.proposalStore.Find(ctx, trace.String())
	if err != nil {
		if isNotFound {
			log.WithError(err).Debugln("proposal not found")
			return nil
		}

		log.WithError(err).Errorln("proposals.Find")
		return err
	}

	// a member votes at most once, replays are ignored
	if handled := p.PassedAt.Valid || govalidator.IsIn(output.Sender, p.Votes...); !handled {
		p.Votes = append(p.Votes, output.Sender)

		if err := w.proposalService.ProposalApproved(ctx, p, output.Sender); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("proposalService.ProposalApproved")
			return err
		}

		if len(p.Votes) >= int(w.system.Threshold) {
			p.PassedAt = sql.NullTime{
				Time:  output.CreatedAt,
				Valid: true,
			}

			if err := w.proposalService.ProposalPassed(ctx, p); err != nil {
				logger.FromContext(ctx).WithError(err).Errorln("proposalService.ProposalPassed")
				return err
			}
		}

		if err := w.proposalStore.Update(ctx, p, output.ID); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("proposals.Update")
			return err
		}
	}

	if p.PassedAt.Valid && p.Version == output.ID {
		return w.handlePassedProposal(ctx, p, output)
	}

	return nil
}

func (w *Payee) buildProposal(ctx context.Context, output *core.Output, action core.ActionType, message []byte) (*core.Proposal, error) {
	log := logger.FromContext(ctx)

	p := &core.Proposal{
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.CreatedAt,
		TraceID:   output.TraceID,
		Creator:   output.Sender,
		AssetID:   output.AssetID,
		Amount:    output.Amount,
		Action:    action,
		Version:   output.ID,
	}

	var content encoding.BinaryUnmarshaler
	switch p.Action {
	case core.ActionTypeProposalInitToken:
		content = &proposal.TokenReq{}
	case core.ActionTypeProposalPause, core.ActionTypeProposalUnpause:
		// no payload
	case core.ActionTypeProposalAddBlacklist, core.ActionTypeProposalRemoveBlacklist:
		content = &proposal.BlacklistReq{}
	case core.ActionTypeProposalWithdraw:
		content = &proposal.WithdrawReq{}
	case core.ActionTypeProposalAddOracleSigner:
		content = &proposal.AddOracleSignerReq{}
	case core.ActionTypeProposalRemoveOracleSigner:
		content = &proposal.RemoveOracleSignerReq{}
	default:
		return nil, fmt.Errorf("unknown proposal action %d", p.Action)
	}

	if content != nil {
		if _, err := mtg.Scan(message, content); err != nil {
			log.WithError(err).Debugln("decode proposal content failed")
		}

		p.Content, _ = json.Marshal(content)
	} else {
		p.Content = []byte("{}")
	}

	return p, nil
}
