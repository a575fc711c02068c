// Package backgrounds manages the category to background-image mapping that
// the category tiles render.
//
// It persists under its own storage key with the same discipline as the main
// collection: mutate memory synchronously, write the whole mapping to the
// backend in the background, absorb and log failures.
package backgrounds

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ruilin/inspiration-space/internal/apperror"
	"github.com/ruilin/inspiration-space/internal/model"
	"github.com/ruilin/inspiration-space/internal/storage"
)

// Defaults returns the stock Unsplash background for each category.
func Defaults() map[model.Category]string {
	return map[model.Category]string{
		model.CategoryLearning: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=400&fit=crop",
		model.CategoryResearch: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		model.CategoryCreation: "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=400&h=400&fit=crop",
		model.CategoryLife:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=400&fit=crop",
	}
}

// Store holds the mapping and its persistence plumbing.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger

	mu      sync.RWMutex
	mapping map[model.Category]string

	persistWG sync.WaitGroup
}

// New creates a store pre-loaded with the default backgrounds.
func New(backend storage.Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
		mapping: Defaults(),
	}
}

// Hydrate loads the stored mapping, if any. Absent or malformed data keeps
// the defaults; either way this never fails the caller.
func (s *Store) Hydrate(ctx context.Context) {
	blob, err := s.backend.Get(ctx, storage.KeyCategoryBackgrounds)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.logger.Warn("background hydration read failed, keeping defaults",
				slog.String("error", err.Error()))
		}
		return
	}

	var stored map[model.Category]string
	if err := json.Unmarshal([]byte(blob), &stored); err != nil {
		s.logger.Warn("background hydration decode failed, keeping defaults",
			slog.String("error", err.Error()))
		return
	}

	// Merge over defaults so a category missing from the blob still has an
	// image, and unknown categories in the blob are ignored.
	mapping := Defaults()
	for c, url := range stored {
		if c.Valid() && url != "" {
			mapping[c] = url
		}
	}

	s.mu.Lock()
	s.mapping = mapping
	s.mu.Unlock()
}

// All returns a copy of the current mapping.
func (s *Store) All() map[model.Category]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.Category]string, len(s.mapping))
	for c, url := range s.mapping {
		out[c] = url
	}
	return out
}

// Set replaces one category's background and persists the whole mapping.
func (s *Store) Set(ctx context.Context, category model.Category, url string) error {
	if !category.Valid() {
		return apperror.ValidationFailed("category", "unknown category")
	}
	if url == "" {
		return apperror.ValidationFailed("backgroundUrl", "background URL is required")
	}

	s.mu.Lock()
	s.mapping[category] = url
	snapshot := make(map[model.Category]string, len(s.mapping))
	for c, u := range s.mapping {
		snapshot[c] = u
	}
	s.mu.Unlock()

	s.persist(snapshot)
	return nil
}

// Flush waits for in-flight persists, mirroring store.Store.Flush.
func (s *Store) Flush() {
	s.persistWG.Wait()
}

func (s *Store) persist(snapshot map[model.Category]string) {
	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()
		blob, err := json.Marshal(snapshot)
		if err != nil {
			s.logger.Warn("background persist encode failed", slog.String("error", err.Error()))
			return
		}
		if err := s.backend.Set(context.Background(), storage.KeyCategoryBackgrounds, string(blob)); err != nil {
			s.logger.Warn("background persist write failed, in-memory state unaffected",
				slog.String("error", err.Error()))
		}
	}()
}
