package core

import (
	"context"
	"time"
)

// User user model
type User struct {
	ID        int64     `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
	UserID    string    `sql:"size:36;unique_index:idx_users_user_id" json:"user_id,omitempty"`
	Name      string    `sql:"size:64" json:"name,omitempty"`
	Avatar    string    `sql:"size:255" json:"avatar,omitempty"`
}

// UserStore user store interface
type UserStore interface {
	Save(ctx context.Context, user *User) error
	Find(ctx context.Context, userID string) (*User, error)
}
