package user

import (
	"context"

	"diamond/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type userStore struct {
	db *db.DB
}

// New new user store
func New(db *db.DB) core.UserStore {
	return &userStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.User{})

		if err := tx.AutoMigrate(core.User{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_users_user_id", "user_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *userStore) Save(ctx context.Context, user *core.User) error {
	return s.db.Update().Where("user_id = ?", user.UserID).
		Assign(map[string]interface{}{
			"name":   user.Name,
			"avatar": user.Avatar,
		}).FirstOrCreate(user).Error
}

func (s *userStore) Find(ctx context.Context, userID string) (*core.User, error) {
	var user core.User
	if err := s.db.View().Where("user_id = ?", userID).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.User{}, nil
		}

		return nil, err
	}

	return &user, nil
}
