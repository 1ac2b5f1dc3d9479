package core

// reader.go decodes a delimited text file into a Dataset.
//
// Input goes through two wrappers before parsing:
//
//   - BOM override: a UTF-8 (or UTF-16) BOM is consumed and the matching
//     decoder is used; without a BOM the input is treated as UTF-8
//   - UTF-8 decoding: invalid sequences become U+FFFD instead of failing
//
// The raw byte count is tracked for the parse-complete log line.

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ContextCheckInterval is how often (in rows) to check for context cancellation.
var ContextCheckInterval = 100

// ReadOptions controls delimited text parsing.
type ReadOptions struct {
	Comma      rune // Field delimiter (default ',')
	LazyQuotes bool // Allow bare quotes in unquoted fields
}

// ReadStats reports what a read consumed.
type ReadStats struct {
	BytesRead int64
}

// countingReader wraps an io.Reader to track bytes read.
type countingReader struct {
	reader    io.Reader
	bytesRead int64
}

// Read implements io.Reader.
func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.bytesRead += int64(n)
	return n, err
}

// decodeInput strips a BOM and sanitizes UTF-8 on the fly.
func decodeInput(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// ReadFile opens path and reads the whole file into a Dataset.
// The source file is never modified.
func ReadFile(ctx context.Context, path string, opts ReadOptions) (*Dataset, ReadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadStats{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	counter := &countingReader{reader: f}
	ds, err := Read(ctx, counter, opts)
	return ds, ReadStats{BytesRead: counter.bytesRead}, err
}

// Read parses r to completion. The first row is the header; each following
// row becomes a Record keyed by header name, in file order.
//
// An empty input yields an empty Dataset with no Columns.
func Read(ctx context.Context, r io.Reader, opts ReadOptions) (*Dataset, error) {
	cr := csv.NewReader(decodeInput(r))
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.LazyQuotes = opts.LazyQuotes
	cr.FieldsPerRecord = 0 // every row must match the header width

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid csv header: %w", err)
	}

	ds := &Dataset{Columns: header}

	for i := 0; ; i++ {
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("read cancelled at row %d: %w", i+1, err)
			}
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}

		rec := make(Record, len(header))
		for j, col := range header {
			rec[col] = row[j]
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}
