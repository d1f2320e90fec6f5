package core

import (
	"github.com/fox-one/msgpack"
)

// ActionType transaction action type
type ActionType int

const (
	// ActionTypeDefault default
	ActionTypeDefault ActionType = iota
	// ActionTypeMint user mints token against stablecoin payment
	ActionTypeMint
	// ActionTypePurchase user spends token back into the vault
	ActionTypePurchase
	// ActionTypeRefundTransfer refund payment to user
	ActionTypeRefundTransfer
	// ActionTypeMintTransfer transfer minted token to user
	ActionTypeMintTransfer
	// ActionTypeWithdrawTransfer transfer reserve out of the vault
	ActionTypeWithdrawTransfer
	// ActionTypeProposalMake make a proposal
	ActionTypeProposalMake
	// ActionTypeProposalShout shout a proposal to admins
	ActionTypeProposalShout
	// ActionTypeProposalVote vote a proposal
	ActionTypeProposalVote
	// ActionTypeProposalInitToken initialize token state
	ActionTypeProposalInitToken
	// ActionTypeProposalPause pause minting
	ActionTypeProposalPause
	// ActionTypeProposalUnpause resume minting
	ActionTypeProposalUnpause
	// ActionTypeProposalAddBlacklist add an address to the blacklist
	ActionTypeProposalAddBlacklist
	// ActionTypeProposalRemoveBlacklist remove an address from the blacklist
	ActionTypeProposalRemoveBlacklist
	// ActionTypeProposalWithdraw withdraw reserve from the vault
	ActionTypeProposalWithdraw
	// ActionTypeProposalAddOracleSigner add a price oracle signer
	ActionTypeProposalAddOracleSigner
	// ActionTypeProposalRemoveOracleSigner remove a price oracle signer
	ActionTypeProposalRemoveOracleSigner
)

// IsProposalAction check whether the action must be gated by the multisig group
func (a ActionType) IsProposalAction() bool {
	return a >= ActionTypeProposalInitToken && a <= ActionTypeProposalRemoveOracleSigner
}

func (a ActionType) String() string {
	switch a {
	case ActionTypeMint:
		return "mint"
	case ActionTypePurchase:
		return "purchase"
	case ActionTypeRefundTransfer:
		return "refund_transfer"
	case ActionTypeMintTransfer:
		return "mint_transfer"
	case ActionTypeWithdrawTransfer:
		return "withdraw_transfer"
	case ActionTypeProposalMake:
		return "proposal_make"
	case ActionTypeProposalShout:
		return "proposal_shout"
	case ActionTypeProposalVote:
		return "proposal_vote"
	case ActionTypeProposalInitToken:
		return "proposal_init_token"
	case ActionTypeProposalPause:
		return "proposal_pause"
	case ActionTypeProposalUnpause:
		return "proposal_unpause"
	case ActionTypeProposalAddBlacklist:
		return "proposal_add_blacklist"
	case ActionTypeProposalRemoveBlacklist:
		return "proposal_remove_blacklist"
	case ActionTypeProposalWithdraw:
		return "proposal_withdraw"
	case ActionTypeProposalAddOracleSigner:
		return "proposal_add_oracle_signer"
	case ActionTypeProposalRemoveOracleSigner:
		return "proposal_remove_oracle_signer"
	default:
		return "default"
	}
}

// TransactionAction wraps a raw action body inside a transfer memo
type TransactionAction struct {
	Body []byte `msgpack:"b,omitempty" json:"body,omitempty"`
}

// Encode encode action to bytes
func (action TransactionAction) Encode() ([]byte, error) {
	return msgpack.Marshal(action)
}

// DecodeTransactionAction decode bytes to action
func DecodeTransactionAction(b []byte) (*TransactionAction, error) {
	var action TransactionAction
	if err := msgpack.Unmarshal(b, &action); err != nil {
		return nil, err
	}

	return &action, nil
}
