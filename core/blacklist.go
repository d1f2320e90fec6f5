package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// MaxBlacklistSize blacklist capacity
const MaxBlacklistSize = 100

// Blacklist a banned address
type Blacklist struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string    `sql:"size:36;unique_index:idx_blacklists_user" json:"user_id"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IBlacklistStore blacklist store interface
type IBlacklistStore interface {
	Create(ctx context.Context, tx *db.DB, entry *Blacklist) error
	Delete(ctx context.Context, tx *db.DB, userID string) error
	Find(ctx context.Context, userID string) (*Blacklist, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, fromID uint64, limit int) ([]*Blacklist, error)
}
