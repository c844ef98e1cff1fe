package oracle

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedOracle memoizes another oracle. The lru cache is safe for concurrent use, so workers may share it.
type CachedOracle struct {
	inner Oracle
	cache *lru.Cache[pair, int]
}

func NewCachedOracle(inner Oracle, size int) (*CachedOracle, error) {
	cache, err := lru.New[pair, int](size)
	if err != nil {
		return nil, err
	}
	return &CachedOracle{
		inner: inner,
		cache: cache,
	}, nil
}

func (c *CachedOracle) TravelTime(from, to int) int {
	key := pair{from, to}
	if tt, ok := c.cache.Get(key); ok {
		return tt
	}
	tt := c.inner.TravelTime(from, to)
	c.cache.Add(key, tt)
	return tt
}

func (c *CachedOracle) Len() int {
	return c.cache.Len()
}
