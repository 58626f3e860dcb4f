package cache

import (
	"fmt"

	"fxconvert/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const snapshotKey = "rates:snapshot"

// Only one snapshot lives here, but ristretto's admission policy needs
// headroom to admit anything at all; undersized counters reject every Set.
const snapshotCacheItems = 100

// RistrettoSnapshotCache keeps the latest rate snapshot in process memory so
// the request path can skip a DB roundtrip. Snapshots are immutable; the
// whole table is swapped under a single key, never patched per currency.
type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
}

func NewSnapshotCache() (*RistrettoSnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * snapshotCacheItems,
		MaxCost:     snapshotCacheItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c}, nil
}

func (c *RistrettoSnapshotCache) Get() (*domain.RateSnapshot, bool) {
	if v, ok := c.cache.Get(snapshotKey); ok {
		s, ok := v.(*domain.RateSnapshot)
		return s, ok
	}
	return nil, false
}

func (c *RistrettoSnapshotCache) Set(snapshot *domain.RateSnapshot) {
	c.cache.Set(snapshotKey, snapshot, 1)
	// Set is async; a refresh must be visible to the next read.
	c.cache.Wait()
}

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
