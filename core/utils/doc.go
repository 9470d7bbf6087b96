// Package utils provides small type-conversion helpers.
//
// Feed payloads arrive as untyped JSON, so values that should be strings or
// integers may show up as floats, byte slices, or anything else. These helpers
// perform best-effort conversion with explicit type switches instead of
// reflection.
package utils
