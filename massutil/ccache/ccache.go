package ccache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"massnet.org/shasum/crypto/sha256"
)

// DigestCache is a concurrent safe lru cache from input text to its digest.
type DigestCache struct {
	l      sync.Mutex
	cache  *lru.Cache
	hits   uint64
	misses uint64
}

func NewDigestCache(maxEntries int) *DigestCache {
	return &DigestCache{
		cache: lru.New(maxEntries),
	}
}

// Get looks up the digest of input.
func (c *DigestCache) Get(input string) (sha256.Digest, bool) {
	c.l.Lock()
	defer c.l.Unlock()
	v, ok := c.cache.Get(input)
	if !ok {
		c.misses++
		return sha256.Digest{}, false
	}
	c.hits++
	return v.(sha256.Digest), true
}

func (c *DigestCache) Add(input string, d sha256.Digest) {
	c.l.Lock()
	c.cache.Add(input, d)
	c.l.Unlock()
}

func (c *DigestCache) Remove(input string) {
	c.l.Lock()
	c.cache.Remove(input)
	c.l.Unlock()
}

func (c *DigestCache) Clear() {
	c.l.Lock()
	c.cache.Clear()
	c.hits, c.misses = 0, 0
	c.l.Unlock()
}

func (c *DigestCache) Len() int {
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}

// Stats returns the number of hits and misses since creation or last Clear.
func (c *DigestCache) Stats() (hits, misses uint64) {
	c.l.Lock()
	defer c.l.Unlock()
	return c.hits, c.misses
}
