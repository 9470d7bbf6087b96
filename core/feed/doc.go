// Package feed provides the connector to the upstream inventory export.
//
// The upstream is a spreadsheet published through an HTTP export service that
// returns JSON. The payload shape is not stable across export revisions: it
// may be a bare array of row objects, or an object keyed by sheet name. The
// client tolerates both and always yields []reconcile.RawRecord, leaving all
// field interpretation to the reconcile normalizer.
//
// # Client Interface
//
// The Client interface abstracts the transport, making it easy to mock the
// feed in tests (see core/feed/mocks).
//
// # Usage
//
//	client, err := feed.NewClient(cfg)
//	rows, err := client.FetchRecords(ctx, cfg.Sheet)
package feed
