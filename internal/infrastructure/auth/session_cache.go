package auth

import (
	"context"
	"time"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

// CacheSessionStore keeps sessions in process memory until they expire.
// State is lost on restart.
type CacheSessionStore struct {
	c *cache.Cache
}

var _ interfaces.ISessionStore = (*CacheSessionStore)(nil)

func NewCacheSessionStore(ttl time.Duration) *CacheSessionStore {
	return &CacheSessionStore{c: cache.New(ttl, 2*ttl)}
}

// Save expires the entry at s.ExpiresAt when set, otherwise after the default TTL.
func (s *CacheSessionStore) Save(_ context.Context, sess entities.Session) error {
	ttl := cache.DefaultExpiration
	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			s.c.Delete(sess.ID)
			return nil
		}
	}
	sess.Token = ""
	s.c.Set(sess.ID, sess, ttl)
	return nil
}

func (s *CacheSessionStore) Get(_ context.Context, id string) (entities.Session, bool, error) {
	v, ok := s.c.Get(id)
	if !ok {
		return entities.Session{}, false, nil
	}
	sess, ok := v.(entities.Session)
	if !ok {
		return entities.Session{}, false, nil
	}
	return sess, true, nil
}

func (s *CacheSessionStore) Delete(_ context.Context, id string) error {
	s.c.Delete(id)
	return nil
}
