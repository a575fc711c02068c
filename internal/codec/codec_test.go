package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/ruilin/inspiration-space/internal/model"
)

func sampleCollection() []model.Inspiration {
	t1 := time.Date(2024, 10, 15, 16, 15, 0, 0, time.UTC)
	t2 := time.Date(2024, 10, 17, 10, 45, 0, 0, time.UTC)
	return []model.Inspiration{
		{
			ID:        "b",
			Title:     "设计灵感",
			Content:   "卡片式布局的一些想法",
			Category:  model.CategoryCreation,
			Color:     "#ffffff",
			CreatedAt: t2,
			UpdatedAt: t2,
		},
		{
			ID:        "a",
			Title:     "no color",
			Content:   "a record without a color tag",
			Category:  model.CategoryLife,
			CreatedAt: t1,
			UpdatedAt: t1.Add(time.Hour),
		},
	}
}

func TestRoundTrip(t *testing.T) {
	original := sampleCollection()

	blob, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("Decode() returned %d records, want %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i].ID != original[i].ID {
			t.Errorf("record %d: ID = %q, want %q", i, decoded[i].ID, original[i].ID)
		}
		if decoded[i].Title != original[i].Title {
			t.Errorf("record %d: Title = %q, want %q", i, decoded[i].Title, original[i].Title)
		}
		if decoded[i].Content != original[i].Content {
			t.Errorf("record %d: Content mismatch", i)
		}
		if decoded[i].Category != original[i].Category {
			t.Errorf("record %d: Category = %q, want %q", i, decoded[i].Category, original[i].Category)
		}
		if decoded[i].Color != original[i].Color {
			t.Errorf("record %d: Color = %q, want %q", i, decoded[i].Color, original[i].Color)
		}
		// Timestamps decode to genuine time values, not strings, and
		// compare equal to the originals.
		if !decoded[i].CreatedAt.Equal(original[i].CreatedAt) {
			t.Errorf("record %d: CreatedAt = %v, want %v", i, decoded[i].CreatedAt, original[i].CreatedAt)
		}
		if !decoded[i].UpdatedAt.Equal(original[i].UpdatedAt) {
			t.Errorf("record %d: UpdatedAt = %v, want %v", i, decoded[i].UpdatedAt, original[i].UpdatedAt)
		}
	}
}

func TestEncode_EmptyCollection(t *testing.T) {
	blob, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error = %v", err)
	}
	if blob != "[]" {
		t.Errorf("Encode(nil) = %q, want %q", blob, "[]")
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "empty blob", blob: ""},
		{name: "not JSON", blob: "{{{"},
		{name: "wrong shape", blob: `{"not":"an array"}`},
		{name: "record without id", blob: `[{"id":"","title":"t","content":"c","category":"life","createdAt":"2024-10-15T16:15:00Z","updatedAt":"2024-10-15T16:15:00Z"}]`},
		{name: "unknown category", blob: `[{"id":"x","title":"t","content":"c","category":"misc","createdAt":"2024-10-15T16:15:00Z","updatedAt":"2024-10-15T16:15:00Z"}]`},
		{name: "missing timestamps", blob: `[{"id":"x","title":"t","content":"c","category":"life"}]`},
		{name: "unparseable timestamp", blob: `[{"id":"x","title":"t","content":"c","category":"life","createdAt":"yesterday","updatedAt":"today"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.blob)
			if err == nil {
				t.Fatal("Decode() expected error, got nil")
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("Decode() error = %T, want *DecodeError", err)
			}
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	// An empty array is a valid collection. A user who deleted every record
	// should not be handed the seed data back on next start.
	records, err := Decode("[]")
	if err != nil {
		t.Fatalf("Decode(\"[]\") error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Decode(\"[]\") returned %d records, want 0", len(records))
	}
}
