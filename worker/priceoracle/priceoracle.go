package priceoracle

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"diamond/core"
	"diamond/internal/diamond"
	"diamond/pkg/id"
	"diamond/worker"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/logger"
	"github.com/pandodao/blst"
	"github.com/shopspring/decimal"
)

// Worker pulls tickers for every accepted payment asset, signs them
// with the feeder's bls key and pushes the records to the vault wallet.
type Worker struct {
	worker.TickWorker
	System             *core.System
	Dapp               *core.Wallet
	SecretKey          *blst.PrivateKey
	SignerIndex        uint64
	PriceStore         core.IPriceStore
	PriceOracleService core.IPriceOracleService
}

// New new price oracle worker
func New(
	system *core.System,
	dapp *core.Wallet,
	secretKey *blst.PrivateKey,
	signerIndex uint64,
	priceStr core.IPriceStore,
	priceSrv core.IPriceOracleService) *Worker {

	job := Worker{
		TickWorker: worker.TickWorker{
			Delay:    10 * time.Second,
			ErrDelay: time.Second,
		},
		System:             system,
		Dapp:               dapp,
		SecretKey:          secretKey,
		SignerIndex:        signerIndex,
		PriceStore:         priceStr,
		PriceOracleService: priceSrv,
	}

	return &job
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "priceoracle")

	wg := sync.WaitGroup{}
	for _, a := range w.System.PaymentAssets {
		wg.Add(1)
		go func(asset *core.PaymentAsset) {
			defer wg.Done()

			if w.isPriceProvided(ctx, asset) {
				return
			}

			ticker, e := w.PriceOracleService.PullPriceTicker(ctx, asset.AssetID, time.Now())
			if e != nil {
				log.Errorln("pull price ticker error:", e)
				return
			}

			if ticker.Price.LessThanOrEqual(decimal.Zero) {
				log.Errorln("invalid ticker price:", ticker.Symbol, ":", ticker.Price)
				return
			}

			if e := w.pushPriceOnChain(ctx, asset, ticker); e != nil {
				log.Errorln("push price on chain error:", e)
			}
		}(a)
	}

	wg.Wait()

	return nil
}

// isPriceProvided skip assets whose stored record is still fresh
func (w *Worker) isPriceProvided(ctx context.Context, asset *core.PaymentAsset) bool {
	log := logger.FromContext(ctx).WithField("worker", "priceoracle")

	price, e := w.PriceStore.Find(ctx, asset.AssetID)
	if e != nil {
		log.WithError(e).Errorln("prices.Find")
		return false
	}

	if price.ID == 0 {
		return false
	}

	return time.Since(price.Timestamp) < diamond.MaxPriceAge/2
}

func (w *Worker) pushPriceOnChain(ctx context.Context, asset *core.PaymentAsset, ticker *core.PriceTicker) error {
	timestamp := time.Now().Unix()

	priceData := core.PriceData{
		AssetID:   asset.AssetID,
		Price:     ticker.Price.Truncate(diamond.TokenDecimals),
		Timestamp: timestamp,
	}

	sig := w.SecretKey.Sign(priceData.Payload())
	priceData.Signature = &core.CosiSignature{
		Signature: *sig,
		Mask:      0x1 << w.SignerIndex,
	}

	memo, err := priceData.MarshalBinary()
	if err != nil {
		return err
	}

	traceID := id.UUIDFromString(fmt.Sprintf("price:%s:%s:%d", w.Dapp.Client.ClientID, asset.AssetID, timestamp/10))

	input := mixin.TransferInput{
		AssetID:    w.System.VoteAsset,
		OpponentID: w.System.ClientID,
		Amount:     w.System.VoteAmount,
		TraceID:    traceID,
		Memo:       base64.StdEncoding.EncodeToString(memo),
	}

	_, err = w.Dapp.Client.Transfer(ctx, &input, w.Dapp.Pin)
	return err
}
