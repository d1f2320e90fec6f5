package price

import (
	"context"

	"diamond/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})

		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_prices_asset", "asset_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *priceStore) Save(ctx context.Context, tx *db.DB, price *core.Price, version int64) error {
	if price.ID == 0 {
		return tx.Update().Where("asset_id = ?", price.AssetID).FirstOrCreate(price).Error
	}

	oldVersion := price.Version
	price.Version = version

	r := tx.Update().Model(price).Where("version = ?", oldVersion).Updates(map[string]interface{}{
		"price":     price.Price,
		"timestamp": price.Timestamp,
		"version":   price.Version,
	})
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *priceStore) Find(ctx context.Context, assetID string) (*core.Price, error) {
	var price core.Price
	if err := s.db.View().Where("asset_id = ?", assetID).First(&price).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Price{}, nil
		}

		return nil, err
	}

	return &price, nil
}
