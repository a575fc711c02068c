// Package storage defines the durable key-value backend contract.
//
// The backend is an opaque, string-keyed blob store with whole-value
// overwrite semantics: no partial writes, no appends, no compare-and-swap.
// It is deliberately dumb. Serialization, ordering, and invariants all live
// above it, in the codec and the record store.
//
// Backend failures are soft: callers log them and move on. The in-memory
// collection is the working set, and availability of that working set wins
// over strict consistency with disk.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value has ever been written for
// the key. Absence is a normal condition, not a failure; callers check for
// it with errors.Is.
var ErrKeyNotFound = errors.New("storage: key not found")

// Well-known keys. Each holds one wholesale-overwritten JSON blob.
const (
	KeyInspirations        = "inspirations"
	KeyCategoryBackgrounds = "categoryBackgrounds"
)

// Backend is the minimal contract a durable store must satisfy.
type Backend interface {
	// Get returns the value stored at key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set writes value at key, replacing any previous value entirely.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the value at key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Clear deletes every key in the namespace.
	Clear(ctx context.Context) error
}
