package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentSymbol accepted payment asset symbol
type PaymentSymbol string

const (
	// PaymentSymbolUSDT usdt
	PaymentSymbolUSDT PaymentSymbol = "USDT"
	// PaymentSymbolUSDC usdc
	PaymentSymbolUSDC PaymentSymbol = "USDC"
)

// IsValid check symbol
func (s PaymentSymbol) IsValid() bool {
	switch s {
	case PaymentSymbolUSDT, PaymentSymbolUSDC:
		return true
	}

	return false
}

// PaymentAsset an accepted payment asset with its fixed token price.
//
// Price is the token price quoted in this asset. The set of accepted
// assets is closed: entries are enumerated at initialization and
// validated against the PaymentSymbol variants, never extended at
// runtime.
type PaymentAsset struct {
	AssetID   string          `json:"asset_id" valid:"uuid,required"`
	Symbol    PaymentSymbol   `json:"symbol" valid:"required"`
	Price     decimal.Decimal `json:"price"`
	MinAmount decimal.Decimal `json:"min_amount"`
}

// PaymentAssetTable accepted payment assets keyed by asset id
type PaymentAssetTable map[string]*PaymentAsset

// BuildPaymentAssetTable validate entries and build the lookup table
func BuildPaymentAssetTable(assets []*PaymentAsset) (PaymentAssetTable, error) {
	if len(assets) == 0 {
		return nil, fmt.Errorf("payment assets: %w", ErrInvalidConfiguration)
	}

	table := make(PaymentAssetTable, len(assets))
	for _, asset := range assets {
		if !asset.Symbol.IsValid() {
			return nil, fmt.Errorf("payment asset %s: unknown symbol %q: %w", asset.AssetID, asset.Symbol, ErrInvalidConfiguration)
		}

		if !asset.Price.IsPositive() {
			return nil, fmt.Errorf("payment asset %s: non-positive price: %w", asset.AssetID, ErrInvalidConfiguration)
		}

		if asset.MinAmount.IsNegative() {
			return nil, fmt.Errorf("payment asset %s: negative min amount: %w", asset.AssetID, ErrInvalidConfiguration)
		}

		if _, ok := table[asset.AssetID]; ok {
			return nil, fmt.Errorf("payment asset %s: duplicate entry: %w", asset.AssetID, ErrInvalidConfiguration)
		}

		table[asset.AssetID] = asset
	}

	return table, nil
}

// Find look up an accepted payment asset
func (t PaymentAssetTable) Find(assetID string) (*PaymentAsset, bool) {
	asset, ok := t[assetID]
	return asset, ok
}
