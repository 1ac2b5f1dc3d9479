package core

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when a transform needs a column the data lacks.
var ErrMissingColumn = errors.New("missing required column")

// Transform is one record-local rewrite step.
//
// Apply may mutate and return the same record or build a new one. It must
// not depend on other records.
type Transform interface {
	Name() string
	Requires() []string // Columns that must exist in every record
	Apply(Record) (Record, error)
}

// FieldNormalizer rewrites the value of a single column.
type FieldNormalizer struct {
	Label     string              // Transform name: "date_noon"
	Field     string              // Column to rewrite (must exist)
	Normalize func(string) string // Value transformation
}

// Name implements Transform.
func (n FieldNormalizer) Name() string { return n.Label }

// Requires implements Transform.
func (n FieldNormalizer) Requires() []string { return []string{n.Field} }

// Apply implements Transform. The record is modified in place.
func (n FieldNormalizer) Apply(rec Record) (Record, error) {
	v, ok := rec[n.Field]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, n.Field)
	}
	rec[n.Field] = n.Normalize(v)
	return rec, nil
}

// ApplyTransforms runs each transform over the whole dataset before starting
// the next one. The returned dataset has the same length, order, and columns
// as ds. Ownership of ds passes to the call; its records may be mutated.
//
// Required columns are checked against the header before a transform runs,
// so a dataset without a header fails for any transform that needs a column.
func ApplyTransforms(ctx context.Context, ds *Dataset, transforms []Transform) (*Dataset, error) {
	if ds == nil {
		ds = &Dataset{}
	}

	records := ds.Records
	for _, t := range transforms {
		if err := ValidateHeaders(ds, t.Requires()); err != nil {
			return nil, fmt.Errorf("transform %s: %w", t.Name(), err)
		}

		out := make([]Record, len(records))
		for i, rec := range records {
			if i%ContextCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, fmt.Errorf("transform %s cancelled at row %d: %w", t.Name(), i+1, err)
				}
			}

			next, err := t.Apply(rec)
			if err != nil {
				return nil, fmt.Errorf("transform %s: row %d: %w", t.Name(), i+1, err)
			}
			if next == nil {
				return nil, fmt.Errorf("transform %s: row %d: no record returned", t.Name(), i+1)
			}
			out[i] = next
		}
		records = out
	}

	return &Dataset{Columns: ds.Columns, Records: records}, nil
}
