package attest

import (
	"sync"
	"time"
)

// NonceCache is the process-local replay guard for attestation request
// ids. Entries are swept on each access once older than 4× the
// attestation max age. A restart loses the cache; the timestamp window
// bounds the exposure, so durability is intentionally not provided.
type NonceCache struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

// NewNonceCache creates an empty cache.
func NewNonceCache() *NonceCache {
	return &NonceCache{seen: make(map[string]time.Time)}
}

// Consume returns true when requestID has not been seen inside the
// retention window and records it. Only successful verifications call
// this; failed requests never insert.
func (c *NonceCache) Consume(requestID string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	retention := time.Duration(MaxAgeSeconds*4) * time.Second
	for id, seenAt := range c.seen {
		if seenAt.Add(retention).Before(now) {
			delete(c.seen, id)
		}
	}

	if _, ok := c.seen[requestID]; ok {
		return false
	}
	c.seen[requestID] = now
	return true
}

// Contains reports whether requestID is inside the retention window
// without recording anything. Used on already-failed verifications so
// an error never inserts.
func (c *NonceCache) Contains(requestID string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	seenAt, ok := c.seen[requestID]
	if !ok {
		return false
	}
	retention := time.Duration(MaxAgeSeconds*4) * time.Second
	return !seenAt.Add(retention).Before(now)
}

// Len reports the live entry count (test helper).
func (c *NonceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}
