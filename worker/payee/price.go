package payee

import (
	"context"
	"encoding/base64"
	"time"

	"diamond/core"
	"diamond/internal/diamond"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/pandodao/blst"
	"github.com/sirupsen/logrus"
)

func (w *Payee) handlePriceEvent(ctx context.Context, output *core.Output, priceData *core.PriceData) error {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"worker": "payee",
		"event":  "price",
		"asset":  priceData.AssetID,
		"price":  priceData.Price,
	})
	ctx = logger.WithContext(ctx, log)

	if _, ok := w.system.PaymentAssets.Find(priceData.AssetID); !ok {
		log.Infoln("skip: not an accepted payment asset")
		return nil
	}

	price, err := w.priceStore.Find(ctx, priceData.AssetID)
	if err != nil {
		log.WithError(err).Errorln("prices.Find")
		return err
	}

	if price.Version >= output.ID {
		return nil
	}

	if !priceData.Price.IsPositive() {
		log.Infoln("skip: non-positive price")
		return nil
	}

	timestamp := time.Unix(priceData.Timestamp, 0)
	if diamond.PriceExpired(timestamp, output.CreatedAt) {
		log.Infoln("skip: price record expired")
		return nil
	}

	signers, err := w.listOracleSigners(ctx)
	if err != nil {
		log.WithError(err).Errorln("oracle_signers.FindAll")
		return err
	}

	if !w.verifyPriceData(ctx, priceData, signers) {
		log.Infoln("skip: price signature verify failed")
		return nil
	}

	price.AssetID = priceData.AssetID
	price.Price = priceData.Price
	price.Timestamp = timestamp

	if err := w.db.Tx(func(tx *db.DB) error {
		return w.priceStore.Save(ctx, tx, price, output.ID)
	}); err != nil {
		log.WithError(err).Errorln("prices.Save")
		return err
	}

	return nil
}

func (w *Payee) listOracleSigners(ctx context.Context) ([]*core.Signer, error) {
	records, err := w.oracleSignerStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	signers := make([]*core.Signer, 0, len(records))
	for idx, r := range records {
		bts, err := base64.StdEncoding.DecodeString(r.PublicKey)
		if err != nil {
			continue
		}

		pub := blst.PublicKey{}
		if err := pub.FromBytes(bts); err != nil {
			continue
		}

		signers = append(signers, &core.Signer{
			Index:     uint64(idx) + 1,
			VerifyKey: &pub,
		})
	}

	return signers, nil
}

func (w *Payee) verifyPriceData(ctx context.Context, priceData *core.PriceData, signers []*core.Signer) bool {
	if priceData.Signature == nil || len(signers) == 0 {
		return false
	}

	payload := priceData.Payload()
	if payload == nil {
		return false
	}

	var pubs []*blst.PublicKey
	for _, signer := range signers {
		if priceData.Signature.Mask&(0x1<<signer.Index) != 0 {
			pubs = append(pubs, signer.VerifyKey)
		}
	}

	if len(pubs) < int(w.system.PriceThreshold) {
		return false
	}

	return blst.AggregatePublicKeys(pubs).Verify(payload, &priceData.Signature.Signature)
}
