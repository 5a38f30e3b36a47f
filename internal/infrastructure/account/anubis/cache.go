package anubis

import (
	"sync"
	"time"

	"github.com/riskibarqy/cricket-live/internal/domain/user"
)

type cachedPrincipal struct {
	principal user.Principal
	expiresAt time.Time
}

// principalCache keeps verified tokens for a short TTL, keyed by token hash.
// A nil cache stores nothing.
type principalCache struct {
	mu         sync.Mutex
	entries    map[string]cachedPrincipal
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func newPrincipalCache(ttl time.Duration, maxEntries int) *principalCache {
	if ttl <= 0 {
		return nil
	}
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &principalCache{
		entries:    make(map[string]cachedPrincipal),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *principalCache) Get(key string) (user.Principal, bool) {
	if c == nil {
		return user.Principal{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return user.Principal{}, false
	}
	if !entry.expiresAt.After(c.now()) {
		delete(c.entries, key)
		return user.Principal{}, false
	}
	return entry.principal, true
}

func (c *principalCache) Set(key string, principal user.Principal) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if len(c.entries) >= c.maxEntries {
		for k, entry := range c.entries {
			if !entry.expiresAt.After(now) {
				delete(c.entries, k)
			}
		}
	}
	if len(c.entries) >= c.maxEntries {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}

	c.entries[key] = cachedPrincipal{principal: principal, expiresAt: now.Add(c.ttl)}
}
