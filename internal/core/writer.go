package core

// writer.go serializes a Dataset through an output Schema.
//
// encoding/csv only quotes fields that need it, so rows are written by hand:
// every field, header included, is wrapped in double quotes with embedded
// quotes doubled. Rows end with "\n".

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteOptions controls delimited text serialization.
type WriteOptions struct {
	Comma rune // Field delimiter (default ',')
}

// quotingWriter writes rows with unconditional quoting.
// bufio errors are sticky and surface at Flush.
type quotingWriter struct {
	w     *bufio.Writer
	comma rune
}

func (q *quotingWriter) writeRow(fields []string) {
	for i, field := range fields {
		if i > 0 {
			q.w.WriteRune(q.comma)
		}
		q.w.WriteByte('"')
		q.w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		q.w.WriteByte('"')
	}
	q.w.WriteByte('\n')
}

// Write serializes ds to w: one header row of schema titles, then one row per
// record in dataset order. A key absent from a record is written as "".
// Returns the number of data rows written.
func Write(ctx context.Context, w io.Writer, ds *Dataset, schema Schema, opts WriteOptions) (int, error) {
	if err := schema.Validate(); err != nil {
		return 0, err
	}

	comma := opts.Comma
	if comma == 0 {
		comma = ','
	}
	qw := &quotingWriter{w: bufio.NewWriter(w), comma: comma}

	qw.writeRow(schema.Titles())

	fields := make([]string, len(schema))
	n := 0
	for i := 0; i < ds.Len(); i++ {
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return n, fmt.Errorf("write cancelled at row %d: %w", i+1, err)
			}
		}

		rec := ds.Records[i]
		for j, col := range schema {
			fields[j] = rec[col.Key]
		}
		qw.writeRow(fields)
		n++
	}

	if err := qw.w.Flush(); err != nil {
		return n, fmt.Errorf("flush output: %w", err)
	}
	return n, nil
}

// WriteFile creates or truncates path and writes ds to it. The parent
// directory must already exist. The file is synced before WriteFile returns.
func WriteFile(ctx context.Context, path string, ds *Dataset, schema Schema, opts WriteOptions) (int, error) {
	if err := schema.Validate(); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}

	n, err := Write(ctx, f, ds, schema, opts)
	if err != nil {
		f.Close()
		return n, err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return n, fmt.Errorf("sync output: %w", err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close output: %w", err)
	}
	return n, nil
}
