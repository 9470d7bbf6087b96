package reconcile

import (
	"context"
	"encoding/json"
	"time"

	"nursery-monitor/core/state"

	"golang.org/x/sync/singleflight"
)

// Fetcher obtains a fresh raw payload from the source connector.
type Fetcher func(ctx context.Context) ([]RawRecord, error)

// cacheEnvelope is the persisted cache entry: the raw payload plus the
// timestamp it was fetched at. It is written as one value, so replacement
// is atomic.
type cacheEnvelope struct {
	FetchedAt time.Time   `json:"fetched_at"`
	Records   []RawRecord `json:"records"`
}

// FeedCache is the TTL-bounded store of the last successfully fetched raw
// record set, consulted before any live fetch. Entries are keyed per feed so
// multiple independent feeds do not collide.
type FeedCache struct {
	store state.Store
	sf    singleflight.Group

	// now is injectable for TTL tests.
	now func() time.Time
}

// NewFeedCache creates a cache persisting through the given store.
func NewFeedCache(store state.Store) *FeedCache {
	return &FeedCache{store: store, now: time.Now}
}

// load reads and decodes the cached envelope. A missing or unreadable entry
// is a cache miss, never an error.
func (c *FeedCache) load(ctx context.Context, key string) (*cacheEnvelope, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var env cacheEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}
	return &env, true
}

func (c *FeedCache) fresh(env *cacheEnvelope, ttl time.Duration) bool {
	return ttl > 0 && c.now().Sub(env.FetchedAt) <= ttl
}

// GetOrFetch returns the cached payload while it is younger than ttl,
// otherwise invokes fetcher and atomically replaces the entry. Concurrent
// callers for the same key share a single fetch (singleflight). A fetch
// failure propagates and leaves the existing entry untouched, so callers can
// still fall back to Stale.
func (c *FeedCache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetcher Fetcher) ([]RawRecord, time.Time, error) {
	if env, ok := c.load(ctx, key); ok && c.fresh(env, ttl) {
		return env.Records, env.FetchedAt, nil
	}

	type fetched struct {
		records []RawRecord
		at      time.Time
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after winning the flight: another caller may have
		// refreshed the entry already.
		if env, ok := c.load(ctx, key); ok && c.fresh(env, ttl) {
			return fetched{records: env.Records, at: env.FetchedAt}, nil
		}

		records, err := fetcher(ctx)
		if err != nil {
			return nil, err
		}

		at := c.now()
		if payload, err := json.Marshal(cacheEnvelope{FetchedAt: at, Records: records}); err == nil {
			// Persistence is best-effort: a failed write only shortens the
			// effective TTL, it never loses the payload we just fetched.
			_ = c.store.Put(ctx, key, payload)
		}
		return fetched{records: records, at: at}, nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	result := v.(fetched)
	return result.records, result.at, nil
}

// Stale returns the cached payload regardless of age, for degraded fallback
// after a failed fetch. ok is false when no readable entry exists.
func (c *FeedCache) Stale(ctx context.Context, key string) ([]RawRecord, time.Time, bool) {
	env, ok := c.load(ctx, key)
	if !ok {
		return nil, time.Time{}, false
	}
	return env.Records, env.FetchedAt, true
}

// Invalidate removes the cached entry so the next GetOrFetch hits the source.
func (c *FeedCache) Invalidate(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}
