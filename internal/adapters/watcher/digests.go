package watcher

import (
	"sync"
	"unique"

	"go.trai.ch/sprite/internal/core/ports"
)

// DigestCache remembers the content digest last reported for each path so
// that writes which leave a file byte-identical can be dropped.
type DigestCache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
	hasher  ports.ContentHasher
}

// NewDigestCache creates a new digest cache.
func NewDigestCache(hasher ports.ContentHasher) *DigestCache {
	return &DigestCache{
		digests: make(map[unique.Handle[string]]uint64),
		hasher:  hasher,
	}
}

// Seed records the current digest of path without reporting a change.
func (c *DigestCache) Seed(path string) {
	digest, err := c.hasher.ComputeFileHash(path)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.digests[unique.Make(path)] = digest
}

// Changed reports whether the content of path differs from the digest last
// recorded for it, and records the new digest. Unreadable files count as
// changed so the consumer gets to see the failure.
func (c *DigestCache) Changed(path string) bool {
	digest, err := c.hasher.ComputeFileHash(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	handle := unique.Make(path)
	if err != nil {
		delete(c.digests, handle)
		return true
	}

	prev, ok := c.digests[handle]
	c.digests[handle] = digest
	return !ok || prev != digest
}

// Forget drops the digest of path and of everything below it.
func (c *DigestCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := path + "/"
	for handle := range c.digests {
		p := handle.Value()
		if p == path || len(p) > len(prefix) && p[:len(prefix)] == prefix {
			delete(c.digests, handle)
		}
	}
}

// Len returns the number of remembered digests.
func (c *DigestCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.digests)
}
