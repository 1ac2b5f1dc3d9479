package core

// validation.go checks an input header against the columns a run depends on.
//
// Two kinds of column are checked:
//  1. Transform columns: ApplyTransforms fails when one is missing
//  2. Schema columns: a missing one is written as an empty field in every
//     row, so the pipeline reports it as a warning instead of failing

import (
	"fmt"
	"strings"
)

// MissingColumns returns the names from want that are absent from the
// dataset header, in want order.
func MissingColumns(ds *Dataset, want []string) []string {
	var missing []string
	for _, name := range want {
		if !ds.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Keys returns the record keys a schema reads, in schema order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, c := range s {
		keys[i] = c.Key
	}
	return keys
}

// ValidateHeaders checks that every required column exists in the dataset
// header. Returns an error listing all missing columns.
func ValidateHeaders(ds *Dataset, required []string) error {
	missing := MissingColumns(ds, required)
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(quoteAll(missing), ", "))
	}
	return nil
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
