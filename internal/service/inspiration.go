// Package service contains the business logic layer: input validation and
// translation between transport-level values and store operations.
//
// Handlers parse HTTP; this layer enforces rules; the store owns the data.
// Methods accept primitives and return domain errors, never HTTP types, so
// the same logic would serve a CLI or a different transport unchanged.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ruilin/inspiration-space/internal/apperror"
	"github.com/ruilin/inspiration-space/internal/model"
	"github.com/ruilin/inspiration-space/internal/query"
	"github.com/ruilin/inspiration-space/internal/stats"
	"github.com/ruilin/inspiration-space/internal/store"
)

const (
	MaxTitleLength   = 100
	MaxContentLength = 20000
)

// InspirationService wraps the record store with validation and query
// plumbing.
type InspirationService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewInspirationService creates the service. The store is injected; the
// composition root in internal/server decides which backend it runs on.
func NewInspirationService(st *store.Store, logger *slog.Logger) *InspirationService {
	return &InspirationService{store: st, logger: logger}
}

// Create validates and captures a new inspiration. Title is optional; when
// empty the store derives it from content.
func (s *InspirationService) Create(ctx context.Context, content, category, color, title string) (*model.Inspiration, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}
	if len(content) > MaxContentLength {
		return nil, apperror.ValidationFailed("content",
			fmt.Sprintf("content must be %d bytes or less", MaxContentLength))
	}

	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, apperror.ValidationFailed("category", err.Error())
	}

	title = strings.TrimSpace(title)
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d bytes or less", MaxTitleLength))
	}

	record, err := s.store.Add(ctx, store.AddInput{
		Content:  content,
		Category: cat,
		Color:    color,
		Title:    title,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("inspiration created",
		slog.String("id", record.ID),
		slog.String("category", string(record.Category)),
	)
	return &record, nil
}

// Get returns a single inspiration by id.
func (s *InspirationService) Get(ctx context.Context, id string) (*model.Inspiration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "inspiration ID is required")
	}
	record, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List runs the query pipeline over the current collection. Unknown sort
// keys and orders fall back to defaults (date, newest first); an unknown
// category filter is a validation error, since silently returning the whole
// collection would be misleading.
func (s *InspirationService) List(ctx context.Context, text, category, sortBy, sortOrder string) ([]model.Inspiration, error) {
	spec := query.Spec{
		Text:      text,
		SortBy:    query.ParseSortKey(sortBy),
		SortOrder: query.ParseSortOrder(sortOrder),
	}
	if strings.TrimSpace(category) != "" {
		cat, err := model.ParseCategory(category)
		if err != nil {
			return nil, apperror.ValidationFailed("category", err.Error())
		}
		spec.Category = cat
	}
	return query.Run(s.store.Collection(), spec), nil
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Title    *string
	Content  *string
	Category *string
	Color    *string
}

// Update applies a partial update to an existing inspiration.
func (s *InspirationService) Update(ctx context.Context, id string, in UpdateInput) (*model.Inspiration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "inspiration ID is required")
	}

	var patch store.Patch
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if len(title) > MaxTitleLength {
			return nil, apperror.ValidationFailed("title",
				fmt.Sprintf("title must be %d bytes or less", MaxTitleLength))
		}
		patch.Title = &title
	}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if content == "" {
			return nil, apperror.ValidationFailed("content", "content cannot be empty")
		}
		if len(content) > MaxContentLength {
			return nil, apperror.ValidationFailed("content",
				fmt.Sprintf("content must be %d bytes or less", MaxContentLength))
		}
		patch.Content = &content
	}
	if in.Category != nil {
		cat, err := model.ParseCategory(*in.Category)
		if err != nil {
			return nil, apperror.ValidationFailed("category", err.Error())
		}
		patch.Category = &cat
	}
	if in.Color != nil {
		patch.Color = in.Color
	}

	record, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("inspiration updated", slog.String("id", id))
	return &record, nil
}

// Delete removes an inspiration permanently.
func (s *InspirationService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "inspiration ID is required")
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Info("inspiration deleted", slog.String("id", id))
	return nil
}

// CountByCategory returns per-category counts over the whole collection,
// independent of any active search or sort.
func (s *InspirationService) CountByCategory(ctx context.Context) map[model.Category]int {
	return s.store.CountByCategory()
}

// Statistics computes the summary for a period ("week", "month", "total";
// anything else falls back to week).
func (s *InspirationService) Statistics(ctx context.Context, period string) stats.Summary {
	return stats.Compute(s.store.Collection(), stats.ParsePeriod(period), time.Now())
}
