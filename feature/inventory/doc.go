// Package inventory implements the seedling inventory monitoring feature.
//
// It wires the reconcile engine to the outside world: a background poller
// keeps the view current, an HTTP surface exposes the aggregate and
// per-species views, and an optional archiver keeps a daily snapshot history
// in object storage.
//
// # Components
//
//   - Service: Owns the polling loop, on-demand cycles and archiving.
//   - Handler: Exposes the HTTP endpoints.
//   - Archiver: Writes one snapshot object per feed per day to S3/MinIO.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET  /inventory/stats          : Aggregate stock, latest activity, watched species.
//   - GET  /inventory/recent         : Recent records, most recent first.
//   - GET  /inventory/species/:name  : Live view for one species term.
//   - POST /inventory/refresh        : Invalidate cache and reconcile live.
//   - GET  /inventory/snapshots      : List archived daily snapshots.
package inventory
