package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "key", []byte("first")))

	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)

	// Replacement is whole-value
	require.NoError(t, store.Put(ctx, "key", []byte("second")))
	got, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	require.NoError(t, store.Delete(ctx, "key"))
	_, err = store.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "key"))
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("payload")
	require.NoError(t, store.Put(ctx, "key", value))

	// Mutating the caller's slice must not affect the stored entry
	value[0] = 'X'

	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	// Mutating the returned slice must not affect subsequent reads
	got[0] = 'Y'
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), again)
}
