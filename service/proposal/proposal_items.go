package proposal

import (
	"context"
	"encoding/json"

	"diamond/core"
	"diamond/core/proposal"
)

func (s *service) renderProposalItems(ctx context.Context, p *core.Proposal) []Item {
	var items []Item

	switch p.Action {
	case core.ActionTypeProposalInitToken:
		var action proposal.TokenReq
		if err := json.Unmarshal(p.Content, &action); err != nil {
			return nil
		}

		items = []Item{
			{
				Key:    "asset",
				Value:  action.AssetID,
				Hint:   s.fetchAssetSymbol(ctx, action.AssetID),
				Action: assetAction(action.AssetID),
			},
			{
				Key:   "symbol",
				Value: action.Symbol,
			},
			{
				Key:   "initial_supply",
				Value: action.InitialSupply.String(),
			},
			{
				Key:   "max_supply",
				Value: action.MaxSupply.String(),
			},
		}
	case core.ActionTypeProposalAddBlacklist, core.ActionTypeProposalRemoveBlacklist:
		var action proposal.BlacklistReq
		if err := json.Unmarshal(p.Content, &action); err != nil {
			return nil
		}

		items = []Item{
			{
				Key:    "user",
				Value:  action.UserID,
				Hint:   s.fetchUserName(ctx, action.UserID),
				Action: userAction(action.UserID),
			},
		}
	case core.ActionTypeProposalWithdraw:
		var action proposal.WithdrawReq
		if err := json.Unmarshal(p.Content, &action); err != nil {
			return nil
		}

		items = []Item{
			{
				Key:    "asset",
				Value:  action.Asset,
				Hint:   s.fetchAssetSymbol(ctx, action.Asset),
				Action: assetAction(action.Asset),
			},
			{
				Key:    "receiver",
				Value:  action.Opponent,
				Hint:   s.fetchUserName(ctx, action.Opponent),
				Action: userAction(action.Opponent),
			},
			{
				Key:   "amount",
				Value: action.Amount.String(),
			},
		}
	case core.ActionTypeProposalAddOracleSigner:
		var action proposal.AddOracleSignerReq
		if err := json.Unmarshal(p.Content, &action); err != nil {
			return nil
		}

		items = []Item{
			{
				Key:    "user",
				Value:  action.UserID,
				Hint:   s.fetchUserName(ctx, action.UserID),
				Action: userAction(action.UserID),
			},
			{
				Key:   "public_key",
				Value: action.PublicKey,
			},
		}
	case core.ActionTypeProposalRemoveOracleSigner:
		var action proposal.RemoveOracleSignerReq
		if err := json.Unmarshal(p.Content, &action); err != nil {
			return nil
		}

		items = []Item{
			{
				Key:    "user",
				Value:  action.UserID,
				Hint:   s.fetchUserName(ctx, action.UserID),
				Action: userAction(action.UserID),
			},
		}
	}

	return items
}
