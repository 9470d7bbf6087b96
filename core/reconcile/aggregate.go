package reconcile

import "strings"

// Aggregate reduces the canonical record set into a StockSnapshot. Every
// record contributes; order does not matter. NetStock may go negative, which
// signals an upstream data-entry discrepancy and is reported as-is.
func Aggregate(records []InventoryRecord) StockSnapshot {
	return AggregateFor(records, nil)
}

// AggregateFor computes a snapshot restricted to records matching the
// predicate. A nil predicate matches everything.
func AggregateFor(records []InventoryRecord, pred func(*InventoryRecord) bool) StockSnapshot {
	var snap StockSnapshot
	species := make(map[string]struct{})

	for i := range records {
		rec := &records[i]
		if pred != nil && !pred(rec) {
			continue
		}

		snap.TotalReceived += rec.Received
		snap.TotalShipped += rec.Shipped
		snap.TotalLost += rec.Lost

		if key := rec.SpeciesKey(); key != "" {
			species[key] = struct{}{}
		}
	}

	snap.NetStock = snap.TotalReceived - snap.TotalShipped - snap.TotalLost
	snap.SpeciesCount = len(species)
	return snap
}

// SpeciesContains returns a predicate matching records whose species name
// contains the given substring, case-insensitively. Used for ad hoc
// single-species views without a separate aggregation path.
func SpeciesContains(substring string) func(*InventoryRecord) bool {
	needle := foldSpecies(substring)
	return func(rec *InventoryRecord) bool {
		return needle != "" && strings.Contains(rec.SpeciesKey(), needle)
	}
}
