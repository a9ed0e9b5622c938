package merch

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"menu.GO/square"
)

// DefaultTTL is how long a snapshot serves reads before the next read
// triggers a provider refresh.
const DefaultTTL = 5 * time.Minute

const redisSnapshotKey = "merch:snapshot"

// Source is the catalog provider contract the cache refreshes from.
// *square.Client satisfies it.
type Source interface {
	ListCatalogObjects(ctx context.Context) ([]square.CatalogObject, error)
	BatchRetrieveInventoryCounts(ctx context.Context, variationIDs []string) (map[string]square.InventoryRecord, error)
}

// Cache owns the current catalog snapshot. Reads trigger refresh when the
// snapshot is empty or older than the TTL; a failed refresh keeps the
// previous snapshot in place so reads degrade to stale-but-available.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time
	redis  *redis.Client

	mu   sync.RWMutex
	snap *Snapshot

	sfg singleflight.Group // collapses concurrent staleness detection
}

func NewCache(source Source, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		snap:   &Snapshot{},
	}
}

// WithClock replaces the clock (tests inject a fake one).
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// WithRedis enables snapshot persistence so a fresh process can serve the
// last known catalog while the provider is unreachable. Nil disables it.
func (c *Cache) WithRedis(client *redis.Client) *Cache {
	c.redis = client
	return c
}

// Snapshot returns the current snapshot after a conditional refresh. The
// refresh error is returned alongside whatever snapshot is available; callers
// with a non-empty snapshot may choose to serve stale.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	err := c.RefreshIfStale(ctx)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap, err
}

// RefreshIfStale refreshes the snapshot when it is empty or past the TTL.
// Concurrent callers coalesce into a single provider fetch.
func (c *Cache) RefreshIfStale(ctx context.Context) error {
	if !c.stale() {
		return nil
	}
	_, err, _ := c.sfg.Do("catalog", func() (interface{}, error) {
		// Re-check: a racing caller may have refreshed while we queued.
		if !c.stale() {
			return nil, nil
		}
		return nil, c.Refresh(ctx)
	})
	return err
}

// Refresh unconditionally fetches, normalizes and installs a new snapshot.
// On provider failure the previous snapshot stays; an empty cache falls back
// to the Redis copy when one exists, and the error is still returned.
func (c *Cache) Refresh(ctx context.Context) error {
	objects, err := c.source.ListCatalogObjects(ctx)
	if err != nil {
		c.restoreFromRedisIfEmpty(ctx)
		return err
	}

	var variationIDs []string
	for _, obj := range objects {
		if obj.Type == square.TypeItemVariation {
			variationIDs = append(variationIDs, obj.ID)
		}
	}
	inventory, err := c.source.BatchRetrieveInventoryCounts(ctx, variationIDs)
	if err != nil {
		c.restoreFromRedisIfEmpty(ctx)
		return err
	}

	snap := &Snapshot{
		Items:     Normalize(objects, inventory),
		FetchedAt: c.now(),
	}
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	c.persistToRedis(ctx, snap)
	return nil
}

func (c *Cache) stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.snap.Items) == 0 {
		return true
	}
	return c.now().Sub(c.snap.FetchedAt) > c.ttl
}

func (c *Cache) persistToRedis(ctx context.Context, snap *Snapshot) {
	if c.redis == nil {
		return
	}
	b, err := json.Marshal(snap)
	if err != nil {
		log.Printf("merch: marshal snapshot for redis: %v", err)
		return
	}
	if err := c.redis.Set(ctx, redisSnapshotKey, b, 0).Err(); err != nil {
		log.Printf("merch: persist snapshot to redis: %v", err)
	}
}

func (c *Cache) restoreFromRedisIfEmpty(ctx context.Context) {
	if c.redis == nil {
		return
	}
	c.mu.RLock()
	empty := len(c.snap.Items) == 0
	c.mu.RUnlock()
	if !empty {
		return
	}
	b, err := c.redis.Get(ctx, redisSnapshotKey).Bytes()
	if err != nil {
		return
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		log.Printf("merch: unmarshal redis snapshot: %v", err)
		return
	}
	if len(snap.Items) == 0 {
		return
	}
	c.mu.Lock()
	if len(c.snap.Items) == 0 {
		c.snap = &snap
		log.Printf("merch: serving %d items from redis snapshot (provider unavailable)", len(snap.Items))
	}
	c.mu.Unlock()
}
