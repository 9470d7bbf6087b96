package models

import (
	"time"

	"nursery-monitor/core/reconcile"
)

// StatsResponse is the aggregate inventory view returned by GET /inventory/stats.
type StatsResponse struct {
	// Stock is the whole-feed aggregate snapshot.
	Stock reconcile.StockSnapshot `json:"stock"`

	// Latest is the most recent activity, absent when the feed is empty.
	Latest *reconcile.ActivityEvent `json:"latest,omitempty"`

	// Notify is the activity surfaced as new by this cycle, if any.
	Notify *reconcile.ActivityEvent `json:"notify,omitempty"`

	// Today is the rolled-up record for today's activity.
	Today *reconcile.InventoryRecord `json:"today,omitempty"`

	// Watched is the live view for the configured watched species.
	Watched *reconcile.SpeciesStats `json:"watched,omitempty"`

	// Stale indicates the data comes from a previous successful fetch.
	Stale bool `json:"stale"`

	// Discarded counts feed rows dropped during normalization.
	Discarded int `json:"discarded"`

	// FetchedAt is when the underlying payload was obtained from the feed.
	FetchedAt time.Time `json:"fetched_at"`
}

// RecentResponse lists recent records, most recent first.
type RecentResponse struct {
	Records []reconcile.InventoryRecord `json:"records"`
	Stale   bool                        `json:"stale"`
}

// SpeciesResponse is the per-species view returned by GET /inventory/species/{name}.
type SpeciesResponse struct {
	Stats reconcile.SpeciesStats `json:"stats"`
	Stale bool                   `json:"stale"`
}

// SnapshotsResponse lists archived snapshot object names.
type SnapshotsResponse struct {
	Snapshots []string `json:"snapshots"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
