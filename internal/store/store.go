// Package store owns the canonical collection of inspirations.
//
// The collection lives in memory and is the single source of truth. Every
// mutation commits to memory first, synchronously, and then kicks off a
// background write of the full serialized collection to the storage backend
// (wholesale overwrite, one blob per key). A failed write is logged and
// otherwise ignored: memory and disk are allowed to diverge until the next
// successful persist. That is a deliberate tradeoff, not a bug; for a
// single-user note tool, the working set in memory matters more than strict
// consistency with storage.
//
// Consequence worth stating once: in-memory state is always ahead of, or
// equal to, durable state. It is never behind.
package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/ruilin/inspiration-space/internal/apperror"
	"github.com/ruilin/inspiration-space/internal/codec"
	"github.com/ruilin/inspiration-space/internal/model"
	"github.com/ruilin/inspiration-space/internal/storage"
)

// Op identifies what kind of change a notification describes.
type Op string

const (
	OpHydrate Op = "hydrate"
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpRemove  Op = "remove"
)

// Change is broadcast to subscribers after each successful in-memory
// mutation. ID is empty for hydration, which replaces the whole collection.
type Change struct {
	Op Op
	ID string
}

// AddInput carries the caller-supplied fields for a new inspiration.
// Title is optional; when empty it is derived from Content.
type AddInput struct {
	Content  string
	Category model.Category
	Color    string
	Title    string
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Title    *string
	Content  *string
	Category *model.Category
	Color    *string
}

// Store is the exclusive owner of the collection. All reads hand out copies;
// nothing outside this package ever holds a reference into the canonical
// slice.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger

	mu       sync.RWMutex
	records  []model.Inspiration
	hydrated bool

	subMu   sync.Mutex
	subs    map[int]chan Change
	nextSub int

	// Tracks in-flight background persists so Flush can wait for them at
	// shutdown (and so tests can assert on durable state deterministically).
	persistWG sync.WaitGroup
}

// New creates a store pre-loaded with the seed collection. Call Hydrate once
// at startup to replace the seed with whatever the backend holds.
func New(backend storage.Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
		records: model.SeedCollection(),
		subs:    make(map[int]chan Change),
	}
}

// Hydrate loads the collection from the backend. It runs once, at startup.
//
// It never returns an error: an empty backend or an undecodable blob means
// the seed collection stays in place, with a warn log as the only trace.
// Either way the store is marked hydrated afterwards.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hydrated {
		return
	}
	s.hydrated = true

	blob, err := s.backend.Get(ctx, storage.KeyInspirations)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.logger.Warn("hydration read failed, keeping seed data",
				slog.String("error", err.Error()))
		}
		return
	}

	records, err := codec.Decode(blob)
	if err != nil {
		s.logger.Warn("hydration decode failed, keeping seed data",
			slog.String("error", err.Error()))
		return
	}

	s.records = records
	s.logger.Info("collection hydrated", slog.Int("records", len(records)))
	s.notify(Change{Op: OpHydrate})
}

// Collection returns a copy of the canonical collection in its natural
// order, most recent first.
func (s *Store) Collection() []model.Inspiration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Inspiration, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.Inspiration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Inspiration{}, apperror.NotFound("inspiration", id)
}

// Add creates a new inspiration and prepends it to the collection, so the
// natural order stays most-recent-first. The in-memory commit is synchronous;
// persistence happens in the background.
//
// The store itself rejects empty content and unknown categories. Callers
// above validate too (to produce friendlier messages), but the invariant is
// enforced here, where the data lives.
func (s *Store) Add(ctx context.Context, input AddInput) (model.Inspiration, error) {
	if strings.TrimSpace(input.Content) == "" {
		return model.Inspiration{}, apperror.ValidationFailed("content", "content is required")
	}
	if !input.Category.Valid() {
		return model.Inspiration{}, apperror.ValidationFailed("category", "unknown category")
	}

	title := input.Title
	if title == "" {
		title = model.DeriveTitle(input.Content)
	}

	now := time.Now()
	record := model.Inspiration{
		ID:        xid.New().String(),
		Title:     title,
		Content:   input.Content,
		Category:  input.Category,
		Color:     input.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	// Prepend. A fresh slice avoids aliasing previously handed-out copies.
	updated := make([]model.Inspiration, 0, len(s.records)+1)
	updated = append(updated, record)
	updated = append(updated, s.records...)
	s.records = updated
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
	s.notify(Change{Op: OpAdd, ID: record.ID})
	return record, nil
}

// Update merges the patch into the record with the given id and resets its
// UpdatedAt. ID and CreatedAt are immutable. Unknown ids are reported as
// NotFound rather than silently ignored.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (model.Inspiration, error) {
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return model.Inspiration{}, apperror.ValidationFailed("content", "content cannot be empty")
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return model.Inspiration{}, apperror.ValidationFailed("category", "unknown category")
	}

	s.mu.Lock()
	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.Inspiration{}, apperror.NotFound("inspiration", id)
	}

	record := s.records[idx]
	if patch.Title != nil {
		record.Title = *patch.Title
	}
	if patch.Content != nil {
		record.Content = *patch.Content
	}
	if patch.Category != nil {
		record.Category = *patch.Category
	}
	if patch.Color != nil {
		record.Color = *patch.Color
	}
	record.UpdatedAt = time.Now()
	s.records[idx] = record
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
	s.notify(Change{Op: OpUpdate, ID: id})
	return record, nil
}

// Remove deletes the record with the given id. Permanent: no soft delete,
// no tombstone. Unknown ids are reported as NotFound.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return apperror.NotFound("inspiration", id)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
	s.notify(Change{Op: OpRemove, ID: id})
	return nil
}

// CountByCategory folds the entire unfiltered collection into per-category
// counts. Every category appears in the result, zero or not, so consumers
// can render all four tiles without checking for missing keys.
func (s *Store) CountByCategory() map[model.Category]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[model.Category]int, 4)
	for _, c := range model.Categories() {
		counts[c] = 0
	}
	for _, r := range s.records {
		counts[r.Category]++
	}
	return counts
}

// Subscribe registers for change notifications. The returned cancel func
// must be called when the subscriber goes away.
//
// Delivery is best effort: if a subscriber's buffer is full the notification
// is dropped rather than blocking a mutation. Subscribers that care about
// exact state re-read Collection() on wake-up anyway.
func (s *Store) Subscribe() (<-chan Change, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Change, 8)
	s.subs[id] = ch
	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Flush blocks until every persist issued so far has finished. Called at
// shutdown so the last mutation reaches disk before the backend closes.
func (s *Store) Flush() {
	s.persistWG.Wait()
}

// snapshotLocked copies the records slice. Caller must hold mu. The copy is
// taken while the lock is held so the background write carries exactly the
// collection as of this mutation.
func (s *Store) snapshotLocked() []model.Inspiration {
	out := make([]model.Inspiration, len(s.records))
	copy(out, s.records)
	return out
}

// persist writes the snapshot to the backend on a background goroutine.
// Fire and forget: no deadline, no retry, and failure never propagates.
// Uses a fresh context on purpose; the mutation that triggered this write
// has already returned, and its request context may be cancelled.
func (s *Store) persist(snapshot []model.Inspiration) {
	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()
		blob, err := codec.Encode(snapshot)
		if err != nil {
			s.logger.Warn("persist encode failed", slog.String("error", err.Error()))
			return
		}
		if err := s.backend.Set(context.Background(), storage.KeyInspirations, blob); err != nil {
			s.logger.Warn("persist write failed, in-memory state unaffected",
				slog.String("error", err.Error()),
				slog.Int("records", len(snapshot)))
		}
	}()
}

func (s *Store) notify(change Change) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
