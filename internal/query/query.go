// Package query implements the read-side pipeline over a collection
// snapshot: category filter, text filter, then a stable multi-key sort.
//
// Run is a pure function. It never mutates its input, never fails, and
// always produces the same order for the same snapshot and spec. The UI owns
// the spec (search box, category chips, sort menu) and re-runs the query on
// every parameter change.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ruilin/inspiration-space/internal/model"
)

// SortKey selects the sort dimension.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByTitle    SortKey = "title"
	SortByCategory SortKey = "category"
)

// SortOrder selects ascending or descending.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Spec is the caller-supplied query: free-text search, category filter, and
// sort. Zero values mean "no filter" and the defaults below.
type Spec struct {
	Text      string
	Category  model.Category // empty: all categories
	SortBy    SortKey        // default SortByDate
	SortOrder SortOrder      // default Desc (newest first)
}

// Run applies the spec to a snapshot and returns a new, ordered slice.
//
// The pipeline order is fixed: category filter, then text filter, then sort.
// Filters compose as an intersection. The sort is stable, so records that
// compare equal keep their post-filter relative order, which is the
// collection's natural most-recent-first order.
func Run(records []model.Inspiration, spec Spec) []model.Inspiration {
	out := make([]model.Inspiration, 0, len(records))

	needle := strings.ToLower(strings.TrimSpace(spec.Text))
	for _, r := range records {
		if spec.Category != "" && r.Category != spec.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Content), needle) {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, spec.SortBy, spec.SortOrder)
	return out
}

func sortRecords(records []model.Inspiration, key SortKey, order SortOrder) {
	var less func(a, b model.Inspiration) int
	switch key {
	case SortByTitle:
		// Locale-aware comparison, the behaviour users expect from a sorted
		// list of titles in any script. A collator is not safe for
		// concurrent use, so each sort builds its own.
		c := collate.New(language.Und)
		less = func(a, b model.Inspiration) int {
			return c.CompareString(a.Title, b.Title)
		}
	case SortByCategory:
		// Plain ordinal comparison of the category value, not a curated
		// domain order.
		less = func(a, b model.Inspiration) int {
			return strings.Compare(string(a.Category), string(b.Category))
		}
	default: // SortByDate and anything unrecognized
		less = func(a, b model.Inspiration) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	asc := order == Asc
	sort.SliceStable(records, func(i, j int) bool {
		cmp := less(records[i], records[j])
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
}

// ParseSortKey maps a raw string onto a SortKey, defaulting to date.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByTitle:
		return SortByTitle
	case SortByCategory:
		return SortByCategory
	default:
		return SortByDate
	}
}

// ParseSortOrder maps a raw string onto a SortOrder, defaulting to
// descending (newest first), which is what the home feed shows.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(s))) == Asc {
		return Asc
	}
	return Desc
}
