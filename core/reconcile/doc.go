// Package reconcile implements the inventory reconciliation engine: it turns
// a raw, loosely-typed feed payload into canonical records and derives the
// aggregate and change-detection views served by the API.
//
// # Pipeline
//
// One reconciliation cycle runs these stages in order:
//
//  1. Cache: the raw payload is served from a TTL-bounded persistent cache
//     (FeedCache) and only fetched live when the entry is missing or expired.
//     Concurrent callers for the same feed share a single fetch.
//
//  2. Normalize: each raw row is mapped through alias tables into an
//     InventoryRecord. Numbers tolerate both Indonesian and English separator
//     conventions; rows with unparseable dates are discarded and counted,
//     never defaulted to "now".
//
//  3. Aggregate: the canonical set reduces to a StockSnapshot (totals, net
//     stock, distinct species count). Order never affects the result.
//
//  4. Rank: the most recent record is selected by date, tie-broken by source
//     sequence, and same-day rows can be rolled up into one synthetic record.
//
//  5. Detect: the latest record's fingerprint is compared against the last
//     surfaced one (Detector) so an event notifies exactly once, surviving
//     restarts through the state store.
//
// # Degradation
//
// A failed live fetch never clears the view: the Service re-serves the last
// known good result (or a stale cache entry) flagged Stale, and skips
// notification for that cycle.
//
// Cycles are serialized. Manual refreshes block on the in-flight cycle; the
// periodic poller drops its tick instead (TryRunCycle).
package reconcile
