package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_Totals(t *testing.T) {
	records := []InventoryRecord{
		{Date: day(27), Species: "Sengon", Received: 100, Sequence: 1},
		{Date: day(28), Species: "sengon", Shipped: 20, Lost: 5, Sequence: 2},
		{Date: day(28), Species: "Jati", Received: 50, Sequence: 3},
	}

	snap := Aggregate(records)

	assert.InDelta(t, 150.0, snap.TotalReceived, 1e-9)
	assert.InDelta(t, 20.0, snap.TotalShipped, 1e-9)
	assert.InDelta(t, 5.0, snap.TotalLost, 1e-9)
	assert.InDelta(t, 125.0, snap.NetStock, 1e-9)
	// "Sengon" and "sengon" are the same species.
	assert.Equal(t, 2, snap.SpeciesCount)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	forward := []InventoryRecord{
		{Date: day(1), Species: "A", Received: 10, Sequence: 1},
		{Date: day(2), Species: "B", Shipped: 3, Sequence: 2},
		{Date: day(3), Species: "C", Lost: 1, Sequence: 3},
	}
	reversed := []InventoryRecord{forward[2], forward[1], forward[0]}

	assert.Equal(t, Aggregate(forward), Aggregate(reversed))
}

func TestAggregate_Empty(t *testing.T) {
	snap := Aggregate(nil)
	assert.Equal(t, StockSnapshot{}, snap)
}

func TestAggregate_NegativeNetStockReportedAsIs(t *testing.T) {
	records := []InventoryRecord{
		{Date: day(1), Species: "Sengon", Received: 10, Sequence: 1},
		{Date: day(2), Species: "Sengon", Shipped: 25, Sequence: 2},
	}

	snap := Aggregate(records)
	assert.InDelta(t, -15.0, snap.NetStock, 1e-9)
}

func TestAggregate_EmptySpeciesNotCounted(t *testing.T) {
	records := []InventoryRecord{
		{Date: day(1), Received: 10, Sequence: 1},
		{Date: day(2), Species: "  ", Received: 5, Sequence: 2},
		{Date: day(3), Species: "Sengon", Received: 5, Sequence: 3},
	}

	snap := Aggregate(records)
	assert.Equal(t, 1, snap.SpeciesCount)
}

func TestAggregateFor_Predicate(t *testing.T) {
	records := []InventoryRecord{
		{Date: day(1), Species: "Sengon Merah", Received: 40, Sequence: 1},
		{Date: day(2), Species: "Jati", Received: 60, Sequence: 2},
		{Date: day(3), Species: "sengon", Shipped: 10, Sequence: 3},
	}

	snap := AggregateFor(records, SpeciesContains("Sengon"))

	assert.InDelta(t, 40.0, snap.TotalReceived, 1e-9)
	assert.InDelta(t, 10.0, snap.TotalShipped, 1e-9)
	assert.InDelta(t, 30.0, snap.NetStock, 1e-9)
	assert.Equal(t, 2, snap.SpeciesCount)
}

func TestSpeciesContains_EmptyTermMatchesNothing(t *testing.T) {
	rec := InventoryRecord{Species: "Sengon"}
	assert.False(t, SpeciesContains("")(&rec))
	assert.False(t, SpeciesContains("   ")(&rec))
}
