package state

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no entry exists for the key.
var ErrNotFound = errors.New("state: entry not found")

// Store is a small key-value persistence layer scoped to the running
// installation. It backs the feed cache and the seen-fingerprint store.
//
// Put must replace the value atomically: readers never observe a partially
// written entry.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
