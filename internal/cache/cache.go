package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"deeplinker/internal/domain"
)

// LinkCache holds resolved Link records. Entries carry a TTL so the window
// in which an administratively deactivated link can still resolve is
// bounded; expiry itself is re-checked against the clock on every hit, so
// the TTL only matters for the is_active flag.
type LinkCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2, ttlSeconds int) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/200) // ~200 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{
		cache: cache,
		ttl:   time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (c *LinkCache) Get(slug string) (domain.Link, bool) {
	val, found := c.cache.Get(slug)
	if !found {
		return domain.Link{}, false
	}
	return val.(domain.Link), true
}

func (c *LinkCache) Set(link domain.Link) {
	cost := int64(len(link.Slug) + len(link.OriginalURL) +
		len(link.AndroidURL) + len(link.IOSURL) + len(link.FallbackURL))
	c.cache.SetWithTTL(link.Slug, link, cost, c.ttl)
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
