package views

import (
	"time"

	"diamond/core"

	"github.com/shopspring/decimal"
)

type (
	// PaymentAsset an accepted payment asset with its oracle observation
	PaymentAsset struct {
		AssetID     string          `json:"asset_id,omitempty"`
		Symbol      string          `json:"symbol,omitempty"`
		Price       decimal.Decimal `json:"price,omitempty"`
		MinAmount   decimal.Decimal `json:"min_amount,omitempty"`
		OraclePrice decimal.Decimal `json:"oracle_price,omitempty"`
		OracleTime  *time.Time      `json:"oracle_time,omitempty"`
	}

	// Token token state view
	Token struct {
		AssetID       string          `json:"asset_id,omitempty"`
		Symbol        string          `json:"symbol,omitempty"`
		TotalSupply   decimal.Decimal `json:"total_supply"`
		MaxSupply     decimal.Decimal `json:"max_supply"`
		Available     decimal.Decimal `json:"available"`
		Paused        bool            `json:"paused"`
		PausedAt      *time.Time      `json:"paused_at,omitempty"`
		PaymentAssets []PaymentAsset  `json:"payment_assets,omitempty"`
	}
)

// TokenView build the token state view
func TokenView(token *core.Token) Token {
	view := Token{
		AssetID:     token.AssetID,
		Symbol:      token.Symbol,
		TotalSupply: token.TotalSupply,
		MaxSupply:   token.MaxSupply,
		Available:   token.Available(),
		Paused:      token.Paused,
	}

	if token.Paused {
		view.PausedAt = &token.PausedAt
	}

	return view
}
