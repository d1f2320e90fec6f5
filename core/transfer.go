package core

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/uuid"
	"github.com/shopspring/decimal"
)

// Transfer an outgoing transfer from the vault wallet
type Transfer struct {
	ID         uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at,omitempty"`
	TraceID    string          `sql:"size:36;unique_index:idx_transfers_trace" json:"trace_id,omitempty"`
	OpponentID string          `sql:"size:36" json:"opponent_id,omitempty"`
	AssetID    string          `sql:"size:36" json:"asset_id,omitempty"`
	Amount     decimal.Decimal `sql:"type:decimal(32,8)" json:"amount,omitempty"`
	Memo       string          `sql:"size:200" json:"memo,omitempty"`
	Handled    bool            `sql:"default:false" json:"handled,omitempty"`
}

// TransferAction the memo attached to an outgoing transfer
type TransferAction struct {
	Source   ActionType `json:"s,omitempty"`
	Origin   ActionType `json:"o,omitempty"`
	FollowID string     `json:"f,omitempty"`
	Code     ErrorCode  `json:"c,omitempty"`
}

// Format format to memo string
func (a TransferAction) Format() (string, error) {
	bs, err := json.Marshal(a)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(bs), nil
}

// DecodeTransferAction decode a transfer memo
func DecodeTransferAction(memo string) (*TransferAction, error) {
	b, err := base64.StdEncoding.DecodeString(memo)
	if err != nil {
		b = []byte(memo)
	}

	var action TransferAction
	if err := json.Unmarshal(b, &action); err != nil {
		return nil, err
	}

	return &action, nil
}

// NewRefundTransfer build a full refund of the output's payment
func NewRefundTransfer(output *Output, userID, followID string, origin ActionType, code ErrorCode) (*Transfer, error) {
	memo, err := TransferAction{
		Source:   ActionTypeRefundTransfer,
		Origin:   origin,
		FollowID: followID,
		Code:     code,
	}.Format()
	if err != nil {
		return nil, err
	}

	return &Transfer{
		TraceID:    uuid.Modify(output.TraceID, "refund"),
		OpponentID: userID,
		AssetID:    output.AssetID,
		Amount:     output.Amount,
		Memo:       memo,
	}, nil
}

// NewMintTransfer build the minted-token transfer for a successful mint
func NewMintTransfer(output *Output, userID, followID, tokenAssetID string, amount decimal.Decimal) (*Transfer, error) {
	memo, err := TransferAction{
		Source:   ActionTypeMintTransfer,
		Origin:   ActionTypeMint,
		FollowID: followID,
	}.Format()
	if err != nil {
		return nil, err
	}

	return &Transfer{
		TraceID:    uuid.Modify(output.TraceID, "mint"),
		OpponentID: userID,
		AssetID:    tokenAssetID,
		Amount:     amount,
		Memo:       memo,
	}, nil
}
