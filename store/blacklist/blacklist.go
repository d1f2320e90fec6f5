package blacklist

import (
	"context"

	"diamond/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type blacklistStore struct {
	db *db.DB
}

// New new blacklist store
func New(db *db.DB) core.IBlacklistStore {
	return &blacklistStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Blacklist{})

		if err := tx.AutoMigrate(core.Blacklist{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_blacklists_user", "user_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *blacklistStore) Create(ctx context.Context, tx *db.DB, entry *core.Blacklist) error {
	return tx.Update().Where("user_id = ?", entry.UserID).FirstOrCreate(entry).Error
}

func (s *blacklistStore) Delete(ctx context.Context, tx *db.DB, userID string) error {
	return tx.Update().Where("user_id = ?", userID).Delete(core.Blacklist{}).Error
}

func (s *blacklistStore) Find(ctx context.Context, userID string) (*core.Blacklist, error) {
	var entry core.Blacklist
	if err := s.db.View().Where("user_id = ?", userID).First(&entry).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Blacklist{}, nil
		}

		return nil, err
	}

	return &entry, nil
}

func (s *blacklistStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.View().Model(core.Blacklist{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *blacklistStore) List(ctx context.Context, fromID uint64, limit int) ([]*core.Blacklist, error) {
	var entries []*core.Blacklist
	if err := s.db.View().Where("id > ?", fromID).Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
