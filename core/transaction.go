package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

const (
	// TransactionKeyAmount amount
	TransactionKeyAmount = "amount"
	// TransactionKeyAssetID asset id
	TransactionKeyAssetID = "asset_id"
	// TransactionKeyRate token price applied
	TransactionKeyRate = "rate"
	// TransactionKeyTotalSupply total supply after the transition
	TransactionKeyTotalSupply = "total_supply"
	// TransactionKeyErrorCode error code
	TransactionKeyErrorCode = "error_code"
	// TransactionKeyOrigin origin
	TransactionKeyOrigin = "origin"
)

// TransactionStatus transaction status
type TransactionStatus int

const (
	// TransactionStatusInit init
	TransactionStatusInit TransactionStatus = iota
	// TransactionStatusComplete complete
	TransactionStatusComplete
	// TransactionStatusAbort abort
	TransactionStatusAbort
)

// TransactionExtraData extra data
type TransactionExtraData map[string]interface{}

// NewTransactionExtra new transaction extra instance
func NewTransactionExtra() TransactionExtraData {
	return make(TransactionExtraData)
}

// Put put data
func (t TransactionExtraData) Put(key string, value interface{}) {
	t[key] = value
}

// Format format as []byte by default
func (t TransactionExtraData) Format() []byte {
	bs, e := json.Marshal(t)
	if e != nil {
		return []byte("{}")
	}

	return bs
}

// ContextSnapshot state snapshot captured with the transaction
type ContextSnapshot struct {
	Token        *Token        `json:"token,omitempty"`
	PaymentAsset *PaymentAsset `json:"payment_asset,omitempty"`
}

// Bytes marshal snapshot
func (cs *ContextSnapshot) Bytes() []byte {
	bs, err := json.Marshal(cs)
	if err != nil {
		return []byte("{}")
	}

	return bs
}

// Transaction transaction info
type Transaction struct {
	ID              int64             `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Action          ActionType        `json:"action,omitempty"`
	TraceID         string            `sql:"size:36;unique_index:idx_transactions_trace_id" json:"trace_id,omitempty"`
	UserID          string            `sql:"size:36;index:idx_transactions_user_id" json:"user_id,omitempty"`
	FollowID        string            `sql:"size:36;index:idx_transactions_follow_id" json:"follow_id,omitempty"`
	AssetID         string            `sql:"size:36;index:idx_transactions_asset_id" json:"asset_id,omitempty"`
	Amount          decimal.Decimal   `sql:"type:decimal(32,8)" json:"amount,omitempty"`
	ContextSnapshot types.JSONText    `sql:"type:TEXT" json:"context_snapshot,omitempty"`
	Data            types.JSONText    `sql:"type:TEXT" json:"data,omitempty"`
	Status          TransactionStatus `sql:"default:1" json:"status,omitempty"`
	CreatedAt       time.Time         `sql:"default:CURRENT_TIMESTAMP;index:idx_transactions_created_at" json:"created_at,omitempty"`
	UpdatedAt       time.Time         `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// SetExtraData set extra data
func (t *Transaction) SetExtraData(extra TransactionExtraData) {
	data := []byte("{}")
	if extra != nil {
		data = extra.Format()
	}

	t.Data = data
}

// TransactionStore transaction store interface
type TransactionStore interface {
	Create(ctx context.Context, tx *db.DB, transaction *Transaction) error
	FindByTraceID(ctx context.Context, traceID string) (*Transaction, error)
	Update(ctx context.Context, tx *db.DB, transaction *Transaction) error
	List(ctx context.Context, offset time.Time, limit int) ([]*Transaction, error)
}

// BuildTransactionFromOutput transaction from output
func BuildTransactionFromOutput(ctx context.Context, userID, followID string, actionType ActionType, output *Output, cs *ContextSnapshot) *Transaction {
	return &Transaction{
		UserID:          userID,
		Action:          actionType,
		TraceID:         output.TraceID,
		FollowID:        followID,
		Amount:          output.Amount,
		AssetID:         output.AssetID,
		Status:          TransactionStatusInit,
		ContextSnapshot: cs.Bytes(),
	}
}
