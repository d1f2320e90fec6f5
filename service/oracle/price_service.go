package oracle

import (
	"context"
	"fmt"
	"time"

	"diamond/core"
	"diamond/internal/diamond"
	"diamond/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// PriceService price service
type PriceService struct {
	Config     *core.Config
	PriceStore core.IPriceStore
	Deviation  decimal.Decimal
}

// New new oracle price service
func New(config *core.Config, priceStore core.IPriceStore) core.IPriceOracleService {
	return &PriceService{
		Config:     config,
		PriceStore: priceStore,
		Deviation:  diamond.DefaultPriceDeviation,
	}
}

// GetRate resolve the fixed rate for the payment asset.
//
// The rate only applies while the latest verified oracle record for the
// asset is fresh and agrees with the fixed rate within the deviation
// tolerance.
func (s *PriceService) GetRate(ctx context.Context, asset *core.PaymentAsset, at time.Time) (decimal.Decimal, error) {
	if asset == nil || !asset.Price.IsPositive() {
		return decimal.Zero, core.ErrUnsupportedPaymentAsset
	}

	price, err := s.PriceStore.Find(ctx, asset.AssetID)
	if err != nil {
		return decimal.Zero, err
	}

	if price.ID == 0 || diamond.PriceExpired(price.Timestamp, at) {
		return decimal.Zero, core.ErrStalePrice
	}

	if !diamond.PlausiblePrice(asset.Price, price.Price, s.Deviation) {
		return decimal.Zero, core.ErrImplausiblePrice
	}

	return asset.Price, nil
}

// PullPriceTicker pull price ticker
func (s *PriceService) PullPriceTicker(ctx context.Context, assetID string, t time.Time) (*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/v2/tickers/%s?ts=%d", s.Config.PriceOracle.EndPoint, assetID, t.UTC().Unix())
	logger.FromContext(ctx).Infoln("pull price:", url)
	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	var price core.PriceTicker
	err = resthttp.ParseResponse(resp, &price)
	if err != nil {
		return nil, err
	}

	return &price, nil
}
