package message

import (
	"context"

	"diamond/core"

	"github.com/fox-one/pkg/store/db"
)

type messageStore struct {
	db *db.DB
}

// New new message store
func New(db *db.DB) core.MessageStore {
	return &messageStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Message{})

		if err := tx.AutoMigrate(core.Message{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_messages_message_id", "message_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *messageStore) Create(ctx context.Context, messages []*core.Message) error {
	return s.db.Tx(func(tx *db.DB) error {
		for _, msg := range messages {
			if err := tx.Update().Where("message_id = ?", msg.MessageID).FirstOrCreate(msg).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *messageStore) List(ctx context.Context, limit int) ([]*core.Message, error) {
	var messages []*core.Message
	if err := s.db.View().Limit(limit).Order("id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

func (s *messageStore) Delete(ctx context.Context, messages []*core.Message) error {
	ids := make([]int64, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}

	return s.db.Update().Where("id IN (?)", ids).Delete(core.Message{}).Error
}
