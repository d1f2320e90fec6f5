package cashier

import (
	"context"
	"errors"

	"diamond/core"
	"diamond/worker"

	"github.com/fox-one/pkg/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Cashier sends pending transfers out of the vault wallet
type Cashier struct {
	worker.TickWorker
	walletStore   core.WalletStore
	walletService core.IWalletService
	cfg           Config
}

type Config struct {
	Batch    int   `json:"batch" valid:"required"`
	Capacity int64 `json:"capacity" valid:"required"`
}

// New new cashier
func New(
	walletStr core.WalletStore,
	walletSrv core.IWalletService,
	cfg Config,
) *Cashier {
	cashier := Cashier{
		walletStore:   walletStr,
		walletService: walletSrv,
		cfg:           cfg,
	}

	return &cashier
}

// Run run worker
func (w *Cashier) Run(ctx context.Context) error {
	f := w.sync
	if w.cfg.Capacity > 1 {
		f = w.parallel(w.cfg.Capacity)
	}

	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx, f)
	})
}

func (w *Cashier) onWork(ctx context.Context, f func(context.Context, []*core.Transfer) error) error {
	log := logger.FromContext(ctx).WithField("worker", "cashier")

	batch := w.cfg.Batch
	if batch <= 0 {
		batch = 100
	}

	transfers, err := w.walletStore.ListPendingTransfers(ctx, batch)
	if err != nil {
		log.WithError(err).Errorln("wallets.ListPendingTransfers")
		return err
	}

	if len(transfers) == 0 {
		return errors.New("EOF")
	}

	return f(ctx, transfers)
}

func (w *Cashier) sync(ctx context.Context, transfers []*core.Transfer) error {
	for _, transfer := range transfers {
		if err := w.handleTransfer(ctx, transfer); err != nil {
			return err
		}
	}

	return nil
}

func (w *Cashier) parallel(capacity int64) func(ctx context.Context, transfers []*core.Transfer) error {
	sem := semaphore.NewWeighted(capacity)

	return func(ctx context.Context, transfers []*core.Transfer) error {
		g := errgroup.Group{}

		for idx := range transfers {
			transfer := transfers[idx]

			if err := sem.Acquire(ctx, 1); err != nil {
				return g.Wait()
			}

			g.Go(func() error {
				defer sem.Release(1)
				return w.handleTransfer(ctx, transfer)
			})
		}

		return g.Wait()
	}
}

func (w *Cashier) handleTransfer(ctx context.Context, transfer *core.Transfer) error {
	log := logger.FromContext(ctx)

	// Transfer is idempotent on trace id, replaying a handled
	// transfer is safe.
	if _, err := w.walletService.HandleTransfer(ctx, transfer); err != nil {
		log.WithError(err).Errorln("walletz.HandleTransfer")
		return err
	}

	transfer.Handled = true
	if err := w.walletStore.UpdateTransfer(ctx, transfer); err != nil {
		log.WithError(err).Errorln("wallets.UpdateTransfer")
		return err
	}

	return nil
}
