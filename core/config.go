package core

import (
	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Config diamond config
type Config struct {
	App           App            `json:"app"`
	DB            db.Config      `json:"db"`
	Dapp          Dapp           `json:"dapp"`
	Group         Group          `json:"group"`
	PriceOracle   PriceOracle    `json:"price_oracle"`
	PaymentAssets []PaymentAsset `json:"payment_assets"`
}

// App app config
type App struct {
	Genesis  int64  `json:"genesis"`
	Location string `json:"location"`
}

// Dapp mixin dapp config
type Dapp struct {
	mixin.Keystore
	ClientSecret string `json:"client_secret"`
	Pin          string `json:"pin"`
}

// Group multisig admin group config
type Group struct {
	// PrivateKey base64 encoded ed25519 private key of this node
	PrivateKey string `json:"private_key"`
	// SignKey base64 encoded ed25519 private key for signing outgoing member payloads
	SignKey string `json:"sign_key"`

	Admins     []string         `json:"admins"`
	Members    []MemberConf     `json:"members"`
	Threshold  uint8            `json:"threshold"`
	Vote       Vote             `json:"vote"`
	PriceSigns PriceSignsConfig `json:"price"`
}

// MemberConf group member config
type MemberConf struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	// VerifyKey base64 encoded ed25519 public key
	VerifyKey string `json:"verify_key"`
}

// Vote proposal vote config
type Vote struct {
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

// PriceSignsConfig oracle signature threshold config
type PriceSignsConfig struct {
	Threshold int `json:"threshold"`
}

// PriceOracle price oracle config
type PriceOracle struct {
	EndPoint string `json:"end_point"`
	// Keystore dapp of the oracle feeder wallet
	Keystore mixin.Keystore `json:"keystore"`
	Pin      string         `json:"pin"`
	// SecretKey base64 encoded bls secret key used by the feeder
	SecretKey string `json:"secret_key"`
	// SignerIndex 1 based index of this feeder in the signer registry
	SignerIndex uint64 `json:"signer_index"`
}
