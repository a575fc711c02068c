// Package codec converts the in-memory collection to and from the string
// blob the storage backend holds.
//
// The wire form is a JSON array of records with RFC3339 timestamps: human
// inspectable (you can read the blob straight out of the kv table) and
// exactly reversible (Decode reconstructs real time.Time values, not
// strings). There is no schema-version tag; migration across versions is an
// explicit non-goal of this store.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/ruilin/inspiration-space/internal/model"
)

// DecodeError reports a blob that could not be turned back into a
// collection. Callers treat it as "no prior data" and fall back to seed
// records; it never aborts startup.
type DecodeError struct {
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("codec: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Encode serializes the collection, preserving its order.
func Encode(records []model.Inspiration) (string, error) {
	if records == nil {
		records = []model.Inspiration{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("codec: encoding collection: %w", err)
	}
	return string(data), nil
}

// Decode parses a blob produced by Encode. Beyond JSON well-formedness it
// checks the invariants the rest of the system relies on: every record has
// an id, a valid category, and non-zero timestamps. A blob that fails any of
// these yields a *DecodeError. Round trip holds: Decode(Encode(c)) == c.
func Decode(blob string) ([]model.Inspiration, error) {
	if blob == "" {
		return nil, &DecodeError{Reason: "empty blob"}
	}

	var records []model.Inspiration
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, &DecodeError{Reason: "malformed JSON", Err: err}
	}

	for i, r := range records {
		if r.ID == "" {
			return nil, &DecodeError{Reason: fmt.Sprintf("record %d has no id", i)}
		}
		if !r.Category.Valid() {
			return nil, &DecodeError{Reason: fmt.Sprintf("record %d has unknown category %q", i, r.Category)}
		}
		if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
			return nil, &DecodeError{Reason: fmt.Sprintf("record %d has missing timestamps", i)}
		}
	}
	return records, nil
}
