package proposal

import (
	"diamond/pkg/mtg"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// TokenReq initialize token request
type TokenReq struct {
	AssetID       string          `json:"asset_id,omitempty"`
	Symbol        string          `json:"symbol,omitempty"`
	InitialSupply decimal.Decimal `json:"initial_supply,omitempty"`
	MaxSupply     decimal.Decimal `json:"max_supply,omitempty"`
}

// MarshalBinary marshal req to binary
func (w TokenReq) MarshalBinary() (data []byte, err error) {
	asset, err := uuid.FromString(w.AssetID)
	if err != nil {
		return nil, err
	}

	return mtg.Encode(asset, w.Symbol, w.InitialSupply, w.MaxSupply)
}

// UnmarshalBinary unmarshal bytes to token req
func (w *TokenReq) UnmarshalBinary(data []byte) error {
	var (
		asset                    uuid.UUID
		symbol                   string
		initialSupply, maxSupply decimal.Decimal
	)

	if _, err := mtg.Scan(data, &asset, &symbol, &initialSupply, &maxSupply); err != nil {
		return err
	}

	w.AssetID = asset.String()
	w.Symbol = symbol
	w.InitialSupply = initialSupply
	w.MaxSupply = maxSupply

	return nil
}
