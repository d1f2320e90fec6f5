package oracle

import (
	"context"
	"testing"
	"time"

	"diamond/core"
	"diamond/internal/diamond"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePriceStore struct {
	price *core.Price
}

func (s *fakePriceStore) Save(ctx context.Context, tx *db.DB, price *core.Price, version int64) error {
	s.price = price
	return nil
}

func (s *fakePriceStore) Find(ctx context.Context, assetID string) (*core.Price, error) {
	if s.price == nil || s.price.AssetID != assetID {
		return &core.Price{}, nil
	}

	return s.price, nil
}

func newTestService(price *core.Price) *PriceService {
	return &PriceService{
		Config:     &core.Config{},
		PriceStore: &fakePriceStore{price: price},
		Deviation:  diamond.DefaultPriceDeviation,
	}
}

func TestGetRate(t *testing.T) {
	now := time.Now()
	asset := &core.PaymentAsset{
		AssetID: "4d8c508b-91c5-375b-92b0-ee702ed2dac5",
		Symbol:  core.PaymentSymbolUSDT,
		Price:   decimal.NewFromInt(10),
	}

	t.Run("fresh plausible price", func(t *testing.T) {
		s := newTestService(&core.Price{
			ID:        1,
			AssetID:   asset.AssetID,
			Price:     decimal.NewFromFloat(10.5),
			Timestamp: now.Add(-10 * time.Second),
		})

		rate, err := s.GetRate(context.Background(), asset, now)
		require.Nil(t, err)
		assert.True(t, rate.Equal(asset.Price))
	})

	t.Run("no record", func(t *testing.T) {
		s := newTestService(nil)

		_, err := s.GetRate(context.Background(), asset, now)
		assert.Equal(t, core.ErrStalePrice, err)
	})

	t.Run("expired record", func(t *testing.T) {
		s := newTestService(&core.Price{
			ID:        1,
			AssetID:   asset.AssetID,
			Price:     decimal.NewFromInt(10),
			Timestamp: now.Add(-2 * diamond.MaxPriceAge),
		})

		_, err := s.GetRate(context.Background(), asset, now)
		assert.Equal(t, core.ErrStalePrice, err)
	})

	t.Run("implausible record", func(t *testing.T) {
		s := newTestService(&core.Price{
			ID:        1,
			AssetID:   asset.AssetID,
			Price:     decimal.NewFromInt(20),
			Timestamp: now.Add(-10 * time.Second),
		})

		_, err := s.GetRate(context.Background(), asset, now)
		assert.Equal(t, core.ErrImplausiblePrice, err)
	})

	t.Run("unsupported asset", func(t *testing.T) {
		s := newTestService(nil)

		_, err := s.GetRate(context.Background(), nil, now)
		assert.Equal(t, core.ErrUnsupportedPaymentAsset, err)
	})
}
