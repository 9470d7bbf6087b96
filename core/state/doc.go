// Package state provides the key-value persistence layer for installation-local data.
//
// Two independent entries live here: the cached raw feed payload (with its fetch
// timestamp) and the last seen activity fingerprint. Both are scoped to the running
// installation and are never synchronized across devices.
//
// # Implementations
//
//   - GormStore: persists entries in the app_state table via GORM/MySQL. Used when
//     a database connection is available so state survives restarts.
//   - MemoryStore: plain in-memory map. Used as a fallback when the database is
//     unavailable, and in tests.
//
// Writes replace entries atomically; a reader never observes a half-written value.
package state
