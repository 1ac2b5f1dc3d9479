package core

import (
	"fmt"
	"time"
)

// Record is one data row keyed by header column name.
type Record map[string]string

// Dataset is the ordered collection of records read from one file.
type Dataset struct {
	// Columns is the source header in file order. Nil when the file was empty.
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// HasColumn reports whether name appears in the source header.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column maps a record key to its output header title.
type Column struct {
	Key   string // Record key (input header name)
	Title string // Header written to the output file
}

// Schema is the ordered output column list.
type Schema []Column

// Titles returns the output header row.
func (s Schema) Titles() []string {
	titles := make([]string, len(s))
	for i, c := range s {
		titles[i] = c.Title
	}
	return titles
}

// Validate checks that the schema has at least one column and no empty keys.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("schema has no columns")
	}
	for i, c := range s {
		if c.Key == "" {
			return fmt.Errorf("schema column %d has an empty key", i+1)
		}
	}
	return nil
}

// Profile bundles an output schema with the transforms applied by default.
type Profile struct {
	Key        string   // Unique identifier: "hevy"
	Label      string   // Display name: "Hevy workout export"
	Columns    Schema   // Output columns in order
	Transforms []string // Transform names applied when none are configured
}

// Phase indicates the current stage of a pipeline run.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseReading      Phase = "reading"
	PhaseTransforming Phase = "transforming"
	PhaseWriting      Phase = "writing"
	PhaseDone         Phase = "done"
	PhaseFailed       Phase = "failed"
)

// Result contains the final outcome of a pipeline run.
type Result struct {
	RunID       string
	Profile     string
	Input       string
	Output      string
	RowsRead    int
	RowsWritten int
	BytesRead   int64
	Phase       Phase // PhaseDone or PhaseFailed
	Duration    time.Duration
	Error       string // Non-empty if Phase is PhaseFailed
}
