package core

import (
	"context"
	"time"

	"diamond/pkg/mtg"

	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
	"github.com/pandodao/blst"
	"github.com/shopspring/decimal"
)

// Price latest verified oracle price record per payment asset
type Price struct {
	ID        int64           `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	AssetID   string          `sql:"size:36;unique_index:idx_prices_asset" json:"asset_id,omitempty"`
	Price     decimal.Decimal `sql:"type:decimal(32,8)" json:"price,omitempty"`
	Timestamp time.Time       `json:"timestamp,omitempty"`
	Version   int64           `sql:"default:0" json:"version,omitempty"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// PriceTicker price ticker pulled from the oracle endpoint
type PriceTicker struct {
	Provider string          `json:"provider,omitempty"`
	AssetID  string          `json:"asset_id,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	Price    decimal.Decimal `json:"price,omitempty"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, tx *db.DB, price *Price, version int64) error
	Find(ctx context.Context, assetID string) (*Price, error)
}

// IPriceOracleService price oracle service interface
type IPriceOracleService interface {
	// GetRate resolves the fixed table rate for the payment asset,
	// sanity checked against the latest verified oracle record.
	GetRate(ctx context.Context, asset *PaymentAsset, at time.Time) (decimal.Decimal, error)
	PullPriceTicker(ctx context.Context, assetID string, t time.Time) (*PriceTicker, error)
}

type (
	// Signer a registered oracle signer
	Signer struct {
		Index     uint64          `json:"index,omitempty"`
		VerifyKey *blst.PublicKey `json:"verify_key,omitempty"`
	}

	// CosiSignature aggregated oracle signature with its signer bitmask
	CosiSignature struct {
		Signature blst.Signature `json:"signature"`
		Mask      uint64         `json:"mask"`
	}

	// PriceData a signed, timestamped price record from the oracle network
	PriceData struct {
		AssetID   string          `json:"asset_id"`
		Price     decimal.Decimal `json:"price"`
		Timestamp int64           `json:"timestamp"`
		Signature *CosiSignature  `json:"signature,omitempty"`
	}
)

// Payload the signed portion of the record
func (p PriceData) Payload() []byte {
	asset, err := uuid.FromString(p.AssetID)
	if err != nil {
		return nil
	}

	b, err := mtg.Encode(asset, p.Price, p.Timestamp)
	if err != nil {
		return nil
	}

	return b
}

// MarshalBinary marshal price data to binary
func (p PriceData) MarshalBinary() ([]byte, error) {
	asset, err := uuid.FromString(p.AssetID)
	if err != nil {
		return nil, err
	}

	return mtg.Encode(asset, p.Price, p.Timestamp, p.Signature.Mask, p.Signature.Signature.Bytes())
}

// UnmarshalBinary unmarshal price data from binary
func (p *PriceData) UnmarshalBinary(data []byte) error {
	var (
		asset     uuid.UUID
		price     decimal.Decimal
		timestamp int64
		mask      uint64
		sig       mtg.RawMessage
	)

	if _, err := mtg.Scan(data, &asset, &price, &timestamp, &mask, &sig); err != nil {
		return err
	}

	var signature blst.Signature
	if err := signature.FromBytes(sig); err != nil {
		return err
	}

	p.AssetID = asset.String()
	p.Price = price
	p.Timestamp = timestamp
	p.Signature = &CosiSignature{
		Signature: signature,
		Mask:      mask,
	}

	return nil
}
