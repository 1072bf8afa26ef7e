package fs

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DigestCache = (*DigestCache)(nil)

// DigestCache keeps artifact digests for one run. It is safe for concurrent use.
type DigestCache struct {
	entries *lru.Cache[uint64, domain.Hash]
}

// NewDigestCache creates a cache holding at most size digests.
func NewDigestCache(size int) (*DigestCache, error) {
	if size <= 0 {
		size = domain.DefaultCacheSize
	}
	entries, err := lru.New[uint64, domain.Hash](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create digest cache"), "size", size)
	}
	return &DigestCache{entries: entries}, nil
}

// Get returns the digest stored under key.
func (c *DigestCache) Get(key uint64) (domain.Hash, bool) {
	return c.entries.Get(key)
}

// Add stores a digest under key.
func (c *DigestCache) Add(key uint64, h domain.Hash) {
	c.entries.Add(key, h)
}

// Len returns the number of cached digests.
func (c *DigestCache) Len() int {
	return c.entries.Len()
}
