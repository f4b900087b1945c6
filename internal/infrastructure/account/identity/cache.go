package identity

import (
	"sync"
	"time"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/user"
)

type cachedPrincipal struct {
	principal user.Principal
	until     time.Time
}

// principalCache keeps verified principals keyed by token digest. When full it drops
// the entry closest to expiry. A ttl <= 0 turns it off.
type principalCache struct {
	ttl   time.Duration
	limit int
	now   func() time.Time

	mu    sync.Mutex
	items map[string]cachedPrincipal
}

func newPrincipalCache(ttl time.Duration, limit int) *principalCache {
	return &principalCache{
		ttl:   ttl,
		limit: limit,
		now:   time.Now,
		items: make(map[string]cachedPrincipal),
	}
}

func (c *principalCache) enabled() bool { return c != nil && c.ttl > 0 }

func (c *principalCache) Get(key string) (user.Principal, bool) {
	if !c.enabled() {
		return user.Principal{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return user.Principal{}, false
	}
	if !c.now().Before(item.until) {
		delete(c.items, key)
		return user.Principal{}, false
	}
	return item.principal, true
}

func (c *principalCache) Set(key string, principal user.Principal) {
	if !c.enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.items[key]; !exists && c.limit > 0 && len(c.items) >= c.limit {
		c.evict(now)
	}
	c.items[key] = cachedPrincipal{principal: principal, until: now.Add(c.ttl)}
}

// evict removes expired entries, or the soonest-expiring one when none have expired.
func (c *principalCache) evict(now time.Time) {
	var (
		oldestKey string
		oldest    time.Time
	)
	removed := false
	for k, item := range c.items {
		if !now.Before(item.until) {
			delete(c.items, k)
			removed = true
			continue
		}
		if oldestKey == "" || item.until.Before(oldest) {
			oldestKey, oldest = k, item.until
		}
	}
	if !removed && oldestKey != "" {
		delete(c.items, oldestKey)
	}
}

func (c *principalCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
