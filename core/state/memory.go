package state

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used when no database is configured
// and in tests. Entries do not survive a process restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy so callers cannot mutate the stored slice.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores value under key.
func (s *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = stored
	return nil
}

// Delete removes the entry for key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
