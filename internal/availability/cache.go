package availability

import (
	"context"
	"sync"
	"time"
)

// Snapshotter is the read side of the availability store.
type Snapshotter interface {
	ListOccupied(ctx context.Context) ([]OccupiedDate, error)
}

// Cache holds the last fetched occupied set. It owns no timer: callers
// decide when to Refresh, typically when the snapshot is older than the
// configured poll interval or right after a mutation. The staleness window
// is therefore explicit and bounded by the caller's cadence.
type Cache struct {
	source Snapshotter

	mu        sync.RWMutex
	occupied  []OccupiedDate
	fetchedAt time.Time
}

// NewCache creates an empty cache over the given source. The first caller
// needing data must Refresh.
func NewCache(source Snapshotter) *Cache {
	return &Cache{source: source}
}

// Refresh replaces the snapshot with a fresh read.
func (c *Cache) Refresh(ctx context.Context) error {
	occupied, err := c.source.ListOccupied(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.occupied = occupied
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return nil
}

// RefreshIfOlder refreshes only when the snapshot is older than maxAge.
func (c *Cache) RefreshIfOlder(ctx context.Context, maxAge time.Duration) error {
	c.mu.RLock()
	fresh := time.Since(c.fetchedAt) < maxAge && !c.fetchedAt.IsZero()
	c.mu.RUnlock()
	if fresh {
		return nil
	}
	return c.Refresh(ctx)
}

// Occupied returns the current snapshot. The slice must not be mutated.
func (c *Cache) Occupied() []OccupiedDate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.occupied
}

// LastFetched returns when the snapshot was taken; zero if never.
func (c *Cache) LastFetched() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
