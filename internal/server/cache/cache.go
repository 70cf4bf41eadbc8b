package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
)

// ParseCache memoizes friendly-address decode results on the server path.
// Parsing is pure, so a cached result is always as good as a fresh one; the
// cache only saves the base64 and CRC work on hot addresses.
type ParseCache struct {
	mu sync.RWMutex

	// Key: the exact friendly string as received.
	recent *lru.Cache[string, addresscodec.DecodeResult]

	// Metrics
	hits   uint64
	misses uint64
}

// New creates a parse cache holding up to size entries.
func New(size int) (*ParseCache, error) {
	recent, err := lru.New[string, addresscodec.DecodeResult](size)
	if err != nil {
		return nil, err
	}
	return &ParseCache{recent: recent}, nil
}

// Get retrieves a cached decode result for the given friendly string.
func (c *ParseCache) Get(friendly string) (addresscodec.DecodeResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, found := c.recent.Get(friendly)
	if found {
		c.hits++
	} else {
		c.misses++
	}
	return result, found
}

// Add stores a decode result.
func (c *ParseCache) Add(friendly string, result addresscodec.DecodeResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recent.Add(friendly, result)
}

// Stats returns the hit and miss counters.
func (c *ParseCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hits, c.misses
}

// Len returns the number of cached entries.
func (c *ParseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.recent.Len()
}
