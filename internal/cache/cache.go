package cache

import (
	"github.com/dgraph-io/ristretto"

	"shortlink/internal/domain"
)

// LinkCache is a read-through cache for resolved links, keyed by
// short code or alias.
type LinkCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/512) // ~512 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache}, nil
}

func (c *LinkCache) Get(key string) (*domain.ShortLink, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return val.(*domain.ShortLink), true
}

// Set stores the link under both its code and, when present, its
// alias, so either lookup key hits.
func (c *LinkCache) Set(link *domain.ShortLink) {
	cost := linkCost(link)
	c.cache.Set(link.Code, link, cost)
	if link.Alias != "" {
		c.cache.Set(link.Alias, link, cost)
	}
}

func (c *LinkCache) Del(key string) {
	c.cache.Del(key)
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

func linkCost(link *domain.ShortLink) int64 {
	cost := len(link.Code) + len(link.Alias) + len(link.Destination) +
		len(link.Secret) + len(link.SplashAsset) + len(link.LoadingText)
	for _, r := range link.Rules {
		cost += len(r.TargetURL) + len(r.Value) + 16
	}
	return int64(cost) + 128
}
