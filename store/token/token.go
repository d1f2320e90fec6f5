package token

import (
	"context"

	"diamond/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type tokenStore struct {
	db *db.DB
}

// New new token store
func New(db *db.DB) core.ITokenStore {
	return &tokenStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Token{})

		if err := tx.AutoMigrate(core.Token{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_tokens_asset", "asset_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *tokenStore) Save(ctx context.Context, tx *db.DB, token *core.Token) error {
	return tx.Update().Where("asset_id = ?", token.AssetID).FirstOrCreate(token).Error
}

func (s *tokenStore) Find(ctx context.Context) (*core.Token, error) {
	var token core.Token
	if err := s.db.View().First(&token).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Token{}, nil
		}

		return nil, err
	}

	return &token, nil
}

func (s *tokenStore) Update(ctx context.Context, tx *db.DB, token *core.Token, version int64) error {
	oldVersion := token.Version
	token.Version = version

	r := tx.Update().Model(token).Where("version = ?", oldVersion).Updates(map[string]interface{}{
		"total_supply": token.TotalSupply,
		"paused":       token.Paused,
		"paused_at":    token.PausedAt,
		"version":      token.Version,
	})
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
