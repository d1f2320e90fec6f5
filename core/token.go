package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Token token state, a singleton
//
// TotalSupply never decreases and never exceeds MaxSupply;
// MaxSupply is immutable once the state is initialized.
type Token struct {
	ID           uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID      string          `sql:"size:36;unique_index:idx_tokens_asset" json:"asset_id"`
	Symbol       string          `sql:"size:20" json:"symbol"`
	TotalSupply  decimal.Decimal `sql:"type:decimal(32,8)" json:"total_supply"`
	MaxSupply    decimal.Decimal `sql:"type:decimal(32,8)" json:"max_supply"`
	Paused       bool            `sql:"default:false" json:"paused"`
	PausedAt     time.Time       `json:"paused_at,omitempty"`
	Version      int64           `sql:"default:0" json:"version"`
	CreatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Available remaining mintable supply
func (t *Token) Available() decimal.Decimal {
	return t.MaxSupply.Sub(t.TotalSupply)
}

// ITokenStore token state store interface
type ITokenStore interface {
	Save(ctx context.Context, tx *db.DB, token *Token) error
	Find(ctx context.Context) (*Token, error)
	Update(ctx context.Context, tx *db.DB, token *Token, version int64) error
}
