package syncer

import (
	"context"
	"errors"

	"diamond/core"
	"diamond/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
)

const checkpointKey = "sync_checkpoint"

// Syncer sync incoming payments into outputs
type Syncer struct {
	worker.TickWorker
	walletStore   core.WalletStore
	walletService core.IWalletService
	property      property.Store
	clientID      string
}

// New new sync worker
func New(
	walletStr core.WalletStore,
	walletSrv core.IWalletService,
	property property.Store,
	clientID string,
) *Syncer {
	syncer := Syncer{
		walletStore:   walletStr,
		walletService: walletSrv,
		property:      property,
		clientID:      clientID,
	}

	return &syncer
}

// Run run worker
func (w *Syncer) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Syncer) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)

	v, err := w.property.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get", checkpointKey)
		return err
	}

	cursor := v.String()

	const Limit = 500

	snapshots, next, err := w.walletService.PullSnapshots(ctx, cursor, Limit)
	if err != nil {
		log.WithError(err).Errorln("walletz.PullSnapshots")
		return err
	}

	if len(snapshots) == 0 {
		return errors.New("EOF")
	}

	var outputs []*core.Output
	for _, snapshot := range snapshots {
		// only payments made to the vault wallet
		if snapshot.UserID != w.clientID || !snapshot.Amount.IsPositive() {
			continue
		}

		outputs = append(outputs, &core.Output{
			CreatedAt: snapshot.CreatedAt,
			TraceID:   snapshot.TraceID,
			Sender:    snapshot.OpponentID,
			AssetID:   snapshot.AssetID,
			Amount:    snapshot.Amount,
			Memo:      snapshot.Memo,
		})
	}

	if len(outputs) > 0 {
		if err := w.walletStore.SaveOutputs(ctx, outputs); err != nil {
			log.WithError(err).Errorln("wallets.SaveOutputs")
			return err
		}
	}

	if err := w.property.Save(ctx, checkpointKey, next); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	return nil
}
