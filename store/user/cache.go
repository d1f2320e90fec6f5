package user

import (
	"context"
	"fmt"
	"time"

	"diamond/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

func Cache(store core.UserStore, exp time.Duration) core.UserStore {
	return &cacheUserStore{
		UserStore: store,
		cache:     gcache.New(2048).LRU().Expiration(exp).Build(),
		sf:        &singleflight.Group{},
	}
}

type cacheUserStore struct {
	core.UserStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheUserStore) Save(ctx context.Context, user *core.User) error {
	if err := s.UserStore.Save(ctx, user); err != nil {
		return err
	}
	s.cacheUser(user)
	return nil
}

func (s *cacheUserStore) Find(ctx context.Context, userID string) (*core.User, error) {
	if v, err := s.cache.Get(s.userKey(userID)); err == nil {
		if user, ok := v.(*core.User); ok {
			return user, nil
		}
	}

	v, err, _ := s.sf.Do(s.userKey(userID), func() (interface{}, error) {
		user, err := s.UserStore.Find(ctx, userID)
		if err != nil {
			return nil, err
		}

		if user.ID > 0 {
			s.cacheUser(user)
		}

		return user, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.User), nil
}

func (s *cacheUserStore) cacheUser(user *core.User) {
	_ = s.cache.Set(s.userKey(user.UserID), user)
}

func (s *cacheUserStore) userKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
