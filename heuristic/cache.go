package heuristic

import (
	"sync/atomic"
	"time"

	"github.com/bluele/gcache"

	"github.com/katalvlaran/metroroute/transit"
)

// DefaultCacheSize bounds the number of destination tables kept in memory.
const DefaultCacheSize = 256

// Cache memoises Tables per destination station with LRU eviction.
// Stored tables are never modified. Concurrent first access for one
// destination is collapsed into a single build by the loader.
type Cache struct {
	net    *transit.Network
	tables gcache.Cache
	builds atomic.Int64
}

// NewCache returns a Cache over net holding at most size tables (DefaultCacheSize
// when size ≤ 0). A positive ttl expires entries after that duration.
func NewCache(net *transit.Network, size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c := &Cache{net: net}
	b := gcache.New(size).
		LRU().
		LoaderFunc(func(key interface{}) (interface{}, error) {
			c.builds.Add(1)
			return Build(net, key.(string))
		})
	if ttl > 0 {
		b = b.Expiration(ttl)
	}
	c.tables = b.Build()

	return c
}

// Get returns the Table for destination station dest, building it on first use.
func (c *Cache) Get(dest string) (*Table, error) {
	v, err := c.tables.Get(dest)
	if err != nil {
		return nil, err
	}

	return v.(*Table), nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int { return c.tables.Len(false) }

// Builds returns how many tables the cache has computed so far.
func (c *Cache) Builds() int64 { return c.builds.Load() }

// Purge drops every cached table.
func (c *Cache) Purge() { c.tables.Purge() }
