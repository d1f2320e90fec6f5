package wallet

import (
	"context"

	"diamond/core"

	"github.com/fox-one/pkg/store/db"
)

type walletStore struct {
	db *db.DB
}

// New new wallet store
func New(db *db.DB) core.WalletStore {
	return &walletStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().Model(core.Output{}).AutoMigrate(core.Output{}).Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.Output{}).AddUniqueIndex("idx_outputs_trace", "trace_id").Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.Transfer{}).AutoMigrate(core.Transfer{}).Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.Transfer{}).AddUniqueIndex("idx_transfers_trace", "trace_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *walletStore) SaveOutputs(ctx context.Context, outputs []*core.Output) error {
	return s.db.Tx(func(tx *db.DB) error {
		for _, output := range outputs {
			if err := tx.Update().Where("trace_id = ?", output.TraceID).FirstOrCreate(output).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *walletStore) ListOutputs(ctx context.Context, fromID int64, limit int) ([]*core.Output, error) {
	var outputs []*core.Output
	if err := s.db.View().Where("id > ?", fromID).Order("id ASC").Limit(limit).Find(&outputs).Error; err != nil {
		return nil, err
	}

	return outputs, nil
}

func (s *walletStore) CreateTransfers(ctx context.Context, tx *db.DB, transfers []*core.Transfer) error {
	for _, transfer := range transfers {
		if err := tx.Update().Where("trace_id = ?", transfer.TraceID).FirstOrCreate(transfer).Error; err != nil {
			return err
		}
	}

	return nil
}

func (s *walletStore) ListPendingTransfers(ctx context.Context, limit int) ([]*core.Transfer, error) {
	var transfers []*core.Transfer
	if err := s.db.View().Where("handled = ?", false).Order("id ASC").Limit(limit).Find(&transfers).Error; err != nil {
		return nil, err
	}

	return transfers, nil
}

func (s *walletStore) UpdateTransfer(ctx context.Context, transfer *core.Transfer) error {
	return s.db.Update().Model(core.Transfer{}).Where("trace_id = ?", transfer.TraceID).Update("handled", transfer.Handled).Error
}
