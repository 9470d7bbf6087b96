package reconcile

import "time"

// RawRecord is a single row as delivered by the feed connector: an arbitrary
// mapping of column names to untyped values. Column names are not guaranteed;
// the normalizer resolves them through alias tables.
type RawRecord map[string]any

// InventoryRecord is the canonical form of a feed row. It is immutable once
// created; records with an unparseable date never become InventoryRecords.
type InventoryRecord struct {
	// Date is the transaction date, normalized to midnight UTC.
	Date time.Time `json:"date"`

	// Species is the seedling species as entered, trimmed but case preserved.
	// Use SpeciesKey for comparisons.
	Species string `json:"species"`

	// Received is the quantity received ("masuk").
	Received float64 `json:"received"`

	// Shipped is the quantity shipped out ("keluar").
	Shipped float64 `json:"shipped"`

	// Lost is the quantity lost ("mati").
	Lost float64 `json:"lost"`

	// Source is the optional origin location ("sumber"/"asal").
	Source string `json:"source,omitempty"`

	// Destination is the optional destination ("tujuan").
	Destination string `json:"destination,omitempty"`

	// Sequence is the row/insertion order from the source, used for
	// tie-breaking between records on the same date.
	Sequence int `json:"sequence"`

	// Aggregated marks a synthetic record merged from several same-day rows.
	Aggregated bool `json:"aggregated,omitempty"`
}

// SpeciesKey returns the species name folded for case-insensitive comparison.
func (r *InventoryRecord) SpeciesKey() string {
	return foldSpecies(r.Species)
}

// HasActivity reports whether any quantity on the record is non-zero.
func (r *InventoryRecord) HasActivity() bool {
	return r.Received > 0 || r.Shipped > 0 || r.Lost > 0
}

// StockSnapshot holds aggregate stock figures over a set of records.
// It is recomputed wholesale on every cycle, never mutated in place.
type StockSnapshot struct {
	// TotalReceived is the sum of all received quantities.
	TotalReceived float64 `json:"total_received"`

	// TotalShipped is the sum of all shipped quantities.
	TotalShipped float64 `json:"total_shipped"`

	// TotalLost is the sum of all lost quantities.
	TotalLost float64 `json:"total_lost"`

	// NetStock is TotalReceived - TotalShipped - TotalLost. A negative value
	// indicates an upstream data-entry discrepancy and is reported as-is.
	NetStock float64 `json:"net_stock"`

	// SpeciesCount is the number of distinct non-empty species names,
	// compared case-insensitively.
	SpeciesCount int `json:"species_count"`
}

// ActivityEvent is the record selected as most recent under the ranking
// policy, together with its content fingerprint.
type ActivityEvent struct {
	Record InventoryRecord `json:"record"`

	// Fingerprint is a stable digest of the event's salient fields, used to
	// decide whether the event has already been surfaced.
	Fingerprint string `json:"fingerprint"`
}

// SpeciesStats is the per-species live view for a watched species.
type SpeciesStats struct {
	// Species is the configured watch term.
	Species string `json:"species"`

	// Stock is the snapshot restricted to matching records.
	Stock StockSnapshot `json:"stock"`

	// LastActivity is the date of the most recent matching record.
	// Zero when HasData is false.
	LastActivity time.Time `json:"last_activity,omitempty"`

	// HasData reports whether any matching record exists.
	HasData bool `json:"has_data"`
}

// Result is the outcome of one reconciliation cycle.
type Result struct {
	// Stock is the aggregate snapshot over the canonical record set.
	Stock StockSnapshot `json:"stock"`

	// Latest is the most recent activity, or nil when the set is empty.
	Latest *ActivityEvent `json:"latest,omitempty"`

	// Notify is set to the latest event when it happened today and has not
	// been surfaced before. Nil otherwise.
	Notify *ActivityEvent `json:"notify,omitempty"`

	// Today is the rolled-up record for today's activity, merged from all
	// same-day rows, falling back to the latest record on quiet days.
	// Nil when the set is empty.
	Today *InventoryRecord `json:"today,omitempty"`

	// Watched is the live view for the configured watched species, when set.
	Watched *SpeciesStats `json:"watched,omitempty"`

	// Stale is true when the cycle served last-known-good data because the
	// live fetch failed.
	Stale bool `json:"stale"`

	// Discarded counts raw rows dropped during normalization.
	Discarded int `json:"discarded"`

	// FetchedAt is when the underlying payload was obtained from the source.
	FetchedAt time.Time `json:"fetched_at"`

	// Records is the canonical record set the cycle was computed from,
	// sorted by the ranking policy (most recent first).
	Records []InventoryRecord `json:"-"`
}
