package core

import (
	"context"
	"time"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Wallet wallet
type Wallet struct {
	Client *mixin.Client `json:"client"`
	Pin    string        `json:"pin"`
}

// Output an incoming payment to the vault wallet, ordered by ID
type Output struct {
	ID        int64           `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	TraceID   string          `sql:"size:36;unique_index:idx_outputs_trace" json:"trace_id,omitempty"`
	Sender    string          `sql:"size:36" json:"sender,omitempty"`
	AssetID   string          `sql:"size:36" json:"asset_id,omitempty"`
	Amount    decimal.Decimal `sql:"type:decimal(32,8)" json:"amount,omitempty"`
	Memo      string          `sql:"size:256" json:"memo,omitempty"`
}

// Snapshot a mixin network snapshot
type Snapshot struct {
	SnapshotID string          `json:"snapshot_id,omitempty"`
	TraceID    string          `json:"trace_id,omitempty"`
	UserID     string          `json:"user_id,omitempty"`
	OpponentID string          `json:"opponent_id,omitempty"`
	AssetID    string          `json:"asset_id,omitempty"`
	Amount     decimal.Decimal `json:"amount,omitempty"`
	Memo       string          `json:"memo,omitempty"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
}

// WalletStore wallet store interface
type WalletStore interface {
	SaveOutputs(ctx context.Context, outputs []*Output) error
	ListOutputs(ctx context.Context, fromID int64, limit int) ([]*Output, error)
	CreateTransfers(ctx context.Context, tx *db.DB, transfers []*Transfer) error
	ListPendingTransfers(ctx context.Context, limit int) ([]*Transfer, error)
	UpdateTransfer(ctx context.Context, transfer *Transfer) error
}

// IWalletService wallet service interface
type IWalletService interface {
	HandleTransfer(ctx context.Context, transfer *Transfer) (*Snapshot, error)
	PullSnapshots(ctx context.Context, cursor string, limit int) ([]*Snapshot, string, error)
	ReadAssetBalance(ctx context.Context, assetID string) (decimal.Decimal, error)
	PaySchemaURL(amount decimal.Decimal, asset, recipient, trace, memo string) (string, error)
	VerifyPayment(ctx context.Context, input *mixin.TransferInput) bool
}
