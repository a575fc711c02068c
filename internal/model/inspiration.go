// Package model defines the data structures used throughout the application.
package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Category is the closed set of groups an inspiration can belong to.
//
// We use a named string type (not plain string) so the compiler distinguishes
// a Category from arbitrary text, and the JSON form stays the readable value
// ("learning", not an integer). Unknown values are rejected at the
// construction boundary by ParseCategory; they never enter the collection.
type Category string

const (
	CategoryLearning Category = "learning"
	CategoryResearch Category = "research"
	CategoryCreation Category = "creation"
	CategoryLife     Category = "life"
)

// Categories returns all valid categories in their display order.
func Categories() []Category {
	return []Category{CategoryLearning, CategoryResearch, CategoryCreation, CategoryLife}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryLearning, CategoryResearch, CategoryCreation, CategoryLife:
		return true
	}
	return false
}

// ParseCategory normalizes and validates a raw category string.
// It trims whitespace and lowercases, so " Learning " parses fine.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Inspiration is a single captured note. Content is the authoritative
// payload; Title is a short label, usually derived from the first line of
// content. Color is an optional decorative tag the UI passes through;
// the server never interprets it.
//
// Timestamp invariant: UpdatedAt >= CreatedAt always. CreatedAt is set once
// at creation and never changes; UpdatedAt is reset on every field update.
type Inspiration struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TitleRuneLimit is how many characters of content a derived title keeps
// before it is cut off with an ellipsis.
const TitleRuneLimit = 30

// DeriveTitle builds a title from content when the caller didn't supply one:
// the first 30 characters, plus a single ellipsis rune when content is
// longer. Counted in runes, not bytes: content is frequently CJK text and
// byte-slicing would split characters mid-sequence.
func DeriveTitle(content string) string {
	if utf8.RuneCountInString(content) <= TitleRuneLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:TitleRuneLimit]) + "…"
}
