package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/ruilin/inspiration-space/internal/storage"
)

func TestBackendContract(t *testing.T) {
	b := New()
	ctx := context.Background()

	if _, err := b.Get(ctx, "k"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("Get() on empty backend: error = %v, want ErrKeyNotFound", err)
	}

	if err := b.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := b.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := b.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "v2" {
		t.Errorf("Get() = %q, want %q", got, "v2")
	}

	if err := b.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := b.Get(ctx, "k"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("Get() after Remove: error = %v, want ErrKeyNotFound", err)
	}

	if err := b.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := b.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := b.Get(ctx, "a"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("Get() after Clear: error = %v, want ErrKeyNotFound", err)
	}
}

func TestFailWrites(t *testing.T) {
	b := New()
	b.FailWrites = true

	if err := b.Set(context.Background(), "k", "v"); err == nil {
		t.Error("Set() with FailWrites: expected error, got nil")
	}
	if _, err := b.Get(context.Background(), "k"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("failed write must not store anything: error = %v, want ErrKeyNotFound", err)
	}
}
