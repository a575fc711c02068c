// Package memory implements the storage backend as an in-process map.
//
// It exists for two reasons: tests that want a backend they can inspect and
// break on demand, and runtimes where no durable storage is available at all
// (the store runs fine without durability, it just starts from seed data
// every launch).
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/ruilin/inspiration-space/internal/storage"
)

// Backend is a thread-safe map of key to blob.
type Backend struct {
	mu   sync.RWMutex
	data map[string]string

	// FailWrites makes Set return an error, simulating an unavailable
	// backend. Tests use it to verify that durability failures stay soft.
	FailWrites bool
}

var _ storage.Backend = (*Backend)(nil)

// New returns an empty in-memory backend.
func New() *Backend {
	return &Backend{data: make(map[string]string)}
}

// Get returns the value at key, or storage.ErrKeyNotFound.
func (b *Backend) Get(_ context.Context, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, ok := b.data[key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return value, nil
}

// Set stores value at key.
func (b *Backend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailWrites {
		return errWriteFailed
	}
	b.data[key] = value
	return nil
}

// Remove deletes the value at key.
func (b *Backend) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

// Clear deletes everything.
func (b *Backend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make(map[string]string)
	return nil
}

var errWriteFailed = errors.New("memory: write failed")
