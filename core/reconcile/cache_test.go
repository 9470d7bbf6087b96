package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"nursery-monitor/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFetcher(rows []RawRecord, err error) (Fetcher, *int) {
	calls := 0
	return func(ctx context.Context) ([]RawRecord, error) {
		calls++
		if err != nil {
			return nil, err
		}
		return rows, nil
	}, &calls
}

func TestFeedCache_ServesFreshEntryWithoutFetching(t *testing.T) {
	ctx := context.Background()
	cache := NewFeedCache(state.NewMemoryStore())
	fetcher, calls := countingFetcher([]RawRecord{{"Masuk": "10"}}, nil)

	first, _, err := cache.GetOrFetch(ctx, "feed", time.Hour, fetcher)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, _, err := cache.GetOrFetch(ctx, "feed", time.Hour, fetcher)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, *calls)
}

func TestFeedCache_RefetchesAfterTTL(t *testing.T) {
	ctx := context.Background()
	cache := NewFeedCache(state.NewMemoryStore())
	fetcher, calls := countingFetcher([]RawRecord{{"Masuk": "10"}}, nil)

	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	_, _, err := cache.GetOrFetch(ctx, "feed", time.Hour, fetcher)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)

	_, _, err = cache.GetOrFetch(ctx, "feed", time.Hour, fetcher)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestFeedCache_FetchErrorLeavesEntryIntact(t *testing.T) {
	ctx := context.Background()
	cache := NewFeedCache(state.NewMemoryStore())

	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	good, _ := countingFetcher([]RawRecord{{"Masuk": "10"}}, nil)
	_, fetchedAt, err := cache.GetOrFetch(ctx, "feed", time.Hour, good)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)

	bad, _ := countingFetcher(nil, errors.New("upstream down"))
	_, _, err = cache.GetOrFetch(ctx, "feed", time.Hour, bad)
	assert.Error(t, err)

	rows, staleAt, ok := cache.Stale(ctx, "feed")
	require.True(t, ok)
	assert.Len(t, rows, 1)
	assert.True(t, fetchedAt.Equal(staleAt))
}

func TestFeedCache_InvalidateForcesRefetch(t *testing.T) {
	ctx := context.Background()
	cache := NewFeedCache(state.NewMemoryStore())
	fetcher, calls := countingFetcher([]RawRecord{{"Masuk": "10"}}, nil)

	_, _, err := cache.GetOrFetch(ctx, "feed", time.Hour, fetcher)
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, "feed"))

	_, _, err = cache.GetOrFetch(ctx, "feed", time.Hour, fetcher)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestFeedCache_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	cache := NewFeedCache(state.NewMemoryStore())

	a, callsA := countingFetcher([]RawRecord{{"Bibit": "Sengon"}}, nil)
	b, callsB := countingFetcher([]RawRecord{{"Bibit": "Jati"}}, nil)

	rowsA, _, err := cache.GetOrFetch(ctx, "feed:a", time.Hour, a)
	require.NoError(t, err)
	rowsB, _, err := cache.GetOrFetch(ctx, "feed:b", time.Hour, b)
	require.NoError(t, err)

	assert.Equal(t, "Sengon", rowsA[0]["Bibit"])
	assert.Equal(t, "Jati", rowsB[0]["Bibit"])
	assert.Equal(t, 1, *callsA)
	assert.Equal(t, 1, *callsB)
}

func TestFeedCache_CorruptEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	store := state.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "feed", []byte("{not json")))

	cache := NewFeedCache(store)
	fetcher, calls := countingFetcher([]RawRecord{{"Masuk": "10"}}, nil)

	rows, _, err := cache.GetOrFetch(ctx, "feed", time.Hour, fetcher)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, *calls)
}

func TestFeedCache_StaleMissingEntry(t *testing.T) {
	cache := NewFeedCache(state.NewMemoryStore())
	_, _, ok := cache.Stale(context.Background(), "feed")
	assert.False(t, ok)
}
