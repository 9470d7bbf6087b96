package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nursery-monitor/core/reconcile"
	"nursery-monitor/core/storage"

	"github.com/minio/minio-go/v7"
)

const snapshotPrefix = "snapshots"

// snapshotDocument is the archived form of one cycle's outcome.
type snapshotDocument struct {
	Feed      string                      `json:"feed"`
	FetchedAt time.Time                   `json:"fetched_at"`
	Stock     reconcile.StockSnapshot     `json:"stock"`
	Records   []reconcile.InventoryRecord `json:"records"`
}

// Archiver writes one snapshot object per feed per day to object storage,
// keeping an auditable history of what the feed looked like over time.
// The day's object is overwritten on each cycle, so it always holds the
// day's final state.
type Archiver struct {
	client storage.Client
	bucket string
	feed   string
}

// NewArchiver creates an archiver for the given feed name.
func NewArchiver(client storage.Client, bucket, feed string) *Archiver {
	return &Archiver{client: client, bucket: bucket, feed: feed}
}

// EnsureBucket creates the archive bucket when it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create archive bucket: %w", err)
	}
	return nil
}

func (a *Archiver) objectName(day time.Time) string {
	return fmt.Sprintf("%s/%s/%s.json", snapshotPrefix, a.feed, day.UTC().Format("2006-01-02"))
}

// Archive persists the cycle outcome under snapshots/<feed>/<date>.json.
// Stale results are never archived; the history must only contain data that
// was actually fetched.
func (a *Archiver) Archive(ctx context.Context, result *reconcile.Result) error {
	if result == nil || result.Stale {
		return nil
	}

	doc := snapshotDocument{
		Feed:      a.feed,
		FetchedAt: result.FetchedAt,
		Stock:     result.Stock,
		Records:   result.Records,
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := a.objectName(result.FetchedAt)
	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}
	return nil
}

// List returns the archived snapshot object names for this feed, in listing
// order.
func (a *Archiver) List(ctx context.Context) ([]string, error) {
	prefix := fmt.Sprintf("%s/%s/", snapshotPrefix, a.feed)

	names := make([]string, 0)
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}
