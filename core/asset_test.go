package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaymentAssetTable(t *testing.T) {
	usdt := &PaymentAsset{
		AssetID:   "4d8c508b-91c5-375b-92b0-ee702ed2dac5",
		Symbol:    PaymentSymbolUSDT,
		Price:     decimal.NewFromInt(10),
		MinAmount: decimal.NewFromInt(1),
	}
	usdc := &PaymentAsset{
		AssetID: "9b180ab6-6abe-3dc0-a13f-04169eb34bfa",
		Symbol:  PaymentSymbolUSDC,
		Price:   decimal.NewFromInt(10),
	}

	t.Run("valid table", func(t *testing.T) {
		table, err := BuildPaymentAssetTable([]*PaymentAsset{usdt, usdc})
		require.Nil(t, err)
		assert.Len(t, table, 2)

		asset, ok := table.Find(usdt.AssetID)
		require.True(t, ok)
		assert.Equal(t, PaymentSymbolUSDT, asset.Symbol)

		_, ok = table.Find("a9bd4bd9-85ea-4172-8422-c969a07cecbc")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := BuildPaymentAssetTable(nil)
		assert.NotNil(t, err)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := BuildPaymentAssetTable([]*PaymentAsset{{
			AssetID: usdt.AssetID,
			Symbol:  "DOGE",
			Price:   decimal.NewFromInt(10),
		}})
		assert.NotNil(t, err)
	})

	t.Run("non positive price", func(t *testing.T) {
		_, err := BuildPaymentAssetTable([]*PaymentAsset{{
			AssetID: usdt.AssetID,
			Symbol:  PaymentSymbolUSDT,
		}})
		assert.NotNil(t, err)
	})

	t.Run("duplicate asset", func(t *testing.T) {
		_, err := BuildPaymentAssetTable([]*PaymentAsset{usdt, usdt})
		assert.NotNil(t, err)
	})
}
