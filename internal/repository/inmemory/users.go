package inmemory

import (
	"sync"
	"time"
)

// UserCache keeps one value per user id until its TTL expires.
type UserCache[V any] struct {
	mu    sync.RWMutex
	items map[string]userItem[V]
	now   func() time.Time
}

type userItem[V any] struct {
	value     V
	expiresAt time.Time
}

func NewUserCache[V any]() *UserCache[V] {
	return &UserCache[V]{
		items: make(map[string]userItem[V]),
		now:   time.Now,
	}
}

func (c *UserCache[V]) GetByUserID(userID string) (*V, bool) {
	now := c.now()

	c.mu.RLock()
	item, ok := c.items[userID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[userID]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, userID)
		}
		c.mu.Unlock()
		return nil, false
	}

	value := item.value
	return &value, true
}

func (c *UserCache[V]) SetByUserID(userID string, value *V, ttl time.Duration) {
	if value == nil || ttl <= 0 {
		c.DeleteByUserID(userID)
		return
	}

	c.mu.Lock()
	c.items[userID] = userItem[V]{
		value:     *value,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *UserCache[V]) DeleteByUserID(userID string) {
	c.mu.Lock()
	delete(c.items, userID)
	c.mu.Unlock()
}

func (c *UserCache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]userItem[V])
	c.mu.Unlock()
}
