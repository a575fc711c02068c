package query

import (
	"testing"
	"time"

	"github.com/ruilin/inspiration-space/internal/model"
)

// fixture returns a small collection in natural order (newest first):
//
//	t3 "Design notes"      learning
//	t2 "bridge sketches"   creation
//	t1 "App design ideas"  life
func fixture() []model.Inspiration {
	t1 := time.Date(2024, 10, 15, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 10, 16, 10, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 10, 17, 10, 0, 0, 0, time.UTC)
	return []model.Inspiration{
		{ID: "3", Title: "Design notes", Content: "notes on visual design systems", Category: model.CategoryLearning, CreatedAt: t3, UpdatedAt: t3},
		{ID: "2", Title: "bridge sketches", Content: "sketching a pedestrian bridge", Category: model.CategoryCreation, CreatedAt: t2, UpdatedAt: t2},
		{ID: "1", Title: "App design ideas", Content: "layout thoughts for the journal app", Category: model.CategoryLife, CreatedAt: t1, UpdatedAt: t1},
	}
}

func ids(records []model.Inspiration) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func assertOrder(t *testing.T, got []model.Inspiration, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func TestRun_NoFilters(t *testing.T) {
	// The empty spec is the home feed: everything, newest first.
	got := Run(fixture(), Spec{})
	assertOrder(t, got, "3", "2", "1")
}

func TestRun_CategoryFilter(t *testing.T) {
	got := Run(fixture(), Spec{Category: model.CategoryCreation})
	assertOrder(t, got, "2")
}

func TestRun_TextFilter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "matches title or content", text: "design", want: []string{"3", "1"}},
		{name: "case insensitive", text: "DESIGN", want: []string{"3", "1"}},
		{name: "whitespace trimmed", text: "  design  ", want: []string{"3", "1"}},
		{name: "content only match", text: "pedestrian", want: []string{"2"}},
		{name: "no match", text: "zeppelin", want: []string{}},
		{name: "blank text is a no-op", text: "   ", want: []string{"3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(fixture(), Spec{Text: tt.text})
			assertOrder(t, got, tt.want...)
		})
	}
}

func TestRun_FiltersCompose(t *testing.T) {
	// Category and text intersect; a record must satisfy both.
	got := Run(fixture(), Spec{Text: "design", Category: model.CategoryLearning})
	assertOrder(t, got, "3")
}

func TestRun_SortByDate(t *testing.T) {
	asc := Run(fixture(), Spec{SortBy: SortByDate, SortOrder: Asc})
	assertOrder(t, asc, "1", "2", "3")

	desc := Run(fixture(), Spec{SortBy: SortByDate, SortOrder: Desc})
	assertOrder(t, desc, "3", "2", "1")
}

func TestRun_SortByTitle(t *testing.T) {
	// Collation is locale aware: case differences don't split the order the
	// way raw byte comparison would ("App..." < "bridge..." < "Design...").
	asc := Run(fixture(), Spec{SortBy: SortByTitle, SortOrder: Asc})
	assertOrder(t, asc, "1", "2", "3")

	desc := Run(fixture(), Spec{SortBy: SortByTitle, SortOrder: Desc})
	assertOrder(t, desc, "3", "2", "1")
}

func TestRun_SortByCategory(t *testing.T) {
	// Ordinal comparison of the raw value: creation < learning < life.
	asc := Run(fixture(), Spec{SortBy: SortByCategory, SortOrder: Asc})
	assertOrder(t, asc, "2", "3", "1")
}

func TestRun_SortIsStable(t *testing.T) {
	// Two records share a CreatedAt; sorting by date must keep their
	// natural (post-filter) relative order.
	shared := time.Date(2024, 10, 16, 10, 0, 0, 0, time.UTC)
	records := []model.Inspiration{
		{ID: "a", Title: "first", Content: "x", Category: model.CategoryLife, CreatedAt: shared, UpdatedAt: shared},
		{ID: "b", Title: "second", Content: "x", Category: model.CategoryLife, CreatedAt: shared, UpdatedAt: shared},
	}

	asc := Run(records, Spec{SortBy: SortByDate, SortOrder: Asc})
	assertOrder(t, asc, "a", "b")

	desc := Run(records, Spec{SortBy: SortByDate, SortOrder: Desc})
	assertOrder(t, desc, "a", "b")
}

func TestRun_Deterministic(t *testing.T) {
	spec := Spec{Text: "design", SortBy: SortByTitle, SortOrder: Asc}
	first := Run(fixture(), spec)
	second := Run(fixture(), spec)
	assertOrder(t, second, ids(first)...)

	// Re-running only the sort over an already-queried result changes
	// nothing: the pipeline is idempotent once its filters are satisfied.
	requeried := Run(first, Spec{SortBy: SortByTitle, SortOrder: Asc})
	assertOrder(t, requeried, ids(first)...)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	records := fixture()
	Run(records, Spec{SortBy: SortByTitle, SortOrder: Asc})
	assertOrder(t, records, "3", "2", "1")
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  SortKey
	}{
		{"date", SortByDate},
		{"title", SortByTitle},
		{"category", SortByCategory},
		{"TITLE", SortByTitle},
		{"", SortByDate},
		{"bogus", SortByDate},
	}
	for _, tt := range tests {
		if got := ParseSortKey(tt.input); got != tt.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input string
		want  SortOrder
	}{
		{"asc", Asc},
		{"desc", Desc},
		{"ASC", Asc},
		{"", Desc},
		{"bogus", Desc},
	}
	for _, tt := range tests {
		if got := ParseSortOrder(tt.input); got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
