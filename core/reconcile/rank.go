package reconcile

import (
	"sort"
	"time"
)

// Less reports whether a ranks below b under the ordering policy:
// date first, then source sequence. The most recent record is the maximum.
func less(a, b *InventoryRecord) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Sequence < b.Sequence
}

// PickLatest selects the most recent record: primary key date descending,
// tie-broken by sequence descending (the most recently appended row wins
// over an earlier row entered on the same date). Returns nil on empty input.
func PickLatest(records []InventoryRecord) *InventoryRecord {
	var latest *InventoryRecord
	for i := range records {
		if latest == nil || less(latest, &records[i]) {
			latest = &records[i]
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}

// SortLatestFirst returns a copy of the record set ordered by the ranking
// policy, most recent first.
func SortLatestFirst(records []InventoryRecord) []InventoryRecord {
	out := make([]InventoryRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[j], &out[i])
	})
	return out
}

// PickTodayAggregate produces the single rolled-up record shown for "today".
// All records dated today are merged into one synthetic record summing the
// quantities, tagged Aggregated, carrying the species of the last matching
// row. When no record is dated today it falls back to the chronologically
// last record in the full set. Returns nil on empty input.
func PickTodayAggregate(records []InventoryRecord, today time.Time) *InventoryRecord {
	var todays []*InventoryRecord
	for i := range records {
		if SameDay(records[i].Date, today) {
			todays = append(todays, &records[i])
		}
	}

	if len(todays) == 0 {
		return PickLatest(records)
	}

	merged := InventoryRecord{
		Date:       dateOnly(today),
		Aggregated: true,
	}
	for _, rec := range todays {
		merged.Received += rec.Received
		merged.Shipped += rec.Shipped
		merged.Lost += rec.Lost
		merged.Species = rec.Species
		if rec.Sequence > merged.Sequence {
			merged.Sequence = rec.Sequence
		}
	}
	return &merged
}
