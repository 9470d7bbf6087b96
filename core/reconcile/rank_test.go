package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickLatest_DateWins(t *testing.T) {
	records := []InventoryRecord{
		{Date: day(28), Species: "Jati", Sequence: 1},
		{Date: day(27), Species: "Sengon", Sequence: 9},
	}

	latest := PickLatest(records)
	require.NotNil(t, latest)
	assert.Equal(t, "Jati", latest.Species)
}

func TestPickLatest_SequenceBreaksDateTie(t *testing.T) {
	records := []InventoryRecord{
		{Date: day(27), Species: "first", Sequence: 5},
		{Date: day(27), Species: "second", Sequence: 7},
	}

	latest := PickLatest(records)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Species)
	assert.Equal(t, 7, latest.Sequence)
}

func TestPickLatest_Empty(t *testing.T) {
	assert.Nil(t, PickLatest(nil))
}

func TestPickLatest_ReturnsCopy(t *testing.T) {
	records := []InventoryRecord{{Date: day(27), Species: "Sengon", Sequence: 1}}

	latest := PickLatest(records)
	require.NotNil(t, latest)
	latest.Species = "mutated"
	assert.Equal(t, "Sengon", records[0].Species)
}

func TestSortLatestFirst(t *testing.T) {
	records := []InventoryRecord{
		{Date: day(27), Sequence: 5},
		{Date: day(28), Sequence: 1},
		{Date: day(27), Sequence: 7},
	}

	sorted := SortLatestFirst(records)

	require.Len(t, sorted, 3)
	assert.Equal(t, day(28), sorted[0].Date)
	assert.Equal(t, 7, sorted[1].Sequence)
	assert.Equal(t, 5, sorted[2].Sequence)
	// Input untouched.
	assert.Equal(t, day(27), records[0].Date)
}

func TestPickTodayAggregate_MergesSameDayRows(t *testing.T) {
	today := time.Date(2026, 1, 28, 14, 0, 0, 0, time.UTC)
	records := []InventoryRecord{
		{Date: day(27), Species: "Jati", Received: 99, Sequence: 1},
		{Date: day(28), Species: "Sengon", Received: 100, Sequence: 2},
		{Date: day(28), Species: "Mahoni", Shipped: 20, Lost: 5, Sequence: 3},
	}

	merged := PickTodayAggregate(records, today)
	require.NotNil(t, merged)

	assert.True(t, merged.Aggregated)
	assert.Equal(t, day(28), merged.Date)
	assert.InDelta(t, 100.0, merged.Received, 1e-9)
	assert.InDelta(t, 20.0, merged.Shipped, 1e-9)
	assert.InDelta(t, 5.0, merged.Lost, 1e-9)
	assert.Equal(t, "Mahoni", merged.Species)
	assert.Equal(t, 3, merged.Sequence)
}

func TestPickTodayAggregate_NoTodayFallsBackToLatest(t *testing.T) {
	today := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []InventoryRecord{
		{Date: day(27), Species: "Sengon", Sequence: 1},
		{Date: day(28), Species: "Jati", Sequence: 2},
	}

	got := PickTodayAggregate(records, today)
	require.NotNil(t, got)
	assert.Equal(t, "Jati", got.Species)
	assert.False(t, got.Aggregated)
}

func TestPickTodayAggregate_Empty(t *testing.T) {
	assert.Nil(t, PickTodayAggregate(nil, time.Now()))
}
