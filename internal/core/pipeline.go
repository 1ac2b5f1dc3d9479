package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/csvtransform/internal/logging"
)

// Options configures a single pipeline run. It is fixed once the pipeline
// is created.
type Options struct {
	Profile    string // Label for logs and Result
	Input      string
	Output     string
	Schema     Schema
	Transforms []Transform
	Comma      rune // Field delimiter for input and output (default ',')
	LazyQuotes bool
}

// transitions lists the phases reachable from each phase.
var transitions = map[Phase][]Phase{
	PhaseIdle:         {PhaseReading, PhaseFailed},
	PhaseReading:      {PhaseTransforming, PhaseFailed},
	PhaseTransforming: {PhaseWriting, PhaseFailed},
	PhaseWriting:      {PhaseDone, PhaseFailed},
}

// Pipeline runs read, transform and write in strict sequence. Each Pipeline
// runs at most once.
type Pipeline struct {
	opts  Options
	phase Phase
}

// NewPipeline validates opts and returns an idle pipeline.
func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.Input == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if opts.Output == "" {
		return nil, fmt.Errorf("output path is required")
	}
	if err := opts.Schema.Validate(); err != nil {
		return nil, err
	}
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	for i, t := range opts.Transforms {
		if t == nil {
			return nil, fmt.Errorf("transform %d is nil", i+1)
		}
	}

	return &Pipeline{opts: opts, phase: PhaseIdle}, nil
}

// Phase returns the current phase.
func (p *Pipeline) Phase() Phase {
	return p.phase
}

// advance moves to next, refusing transitions the state machine does not allow.
func (p *Pipeline) advance(next Phase) error {
	for _, allowed := range transitions[p.phase] {
		if allowed == next {
			p.phase = next
			return nil
		}
	}
	return fmt.Errorf("invalid phase transition %s -> %s", p.phase, next)
}

// Run executes the pipeline. When a stage fails the returned error is a *StageError
// naming the phase that failed, and the Result carries PhaseFailed.
//
// Run returns only after the output file has been flushed and synced.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	ctx, runID := logging.WithRunID(ctx)
	logger := logging.WithFields(ctx, "profile", p.opts.Profile)
	start := time.Now()

	result := Result{
		RunID:   runID,
		Profile: p.opts.Profile,
		Input:   p.opts.Input,
		Output:  p.opts.Output,
	}

	fail := func(stage Phase, err error) (Result, error) {
		p.phase = PhaseFailed
		serr := &StageError{Stage: stage, Err: err}
		result.Phase = PhaseFailed
		result.Error = serr.Error()
		result.Duration = time.Since(start)
		logger.Error("run failed", "stage", stage, "error", err)
		return result, serr
	}

	if err := p.advance(PhaseReading); err != nil {
		return result, fmt.Errorf("pipeline already run: %w", err)
	}
	logger.Info("run started", "input", p.opts.Input, "output", p.opts.Output)

	// 1. Read
	raw, stats, err := ReadFile(ctx, p.opts.Input, ReadOptions{
		Comma:      p.opts.Comma,
		LazyQuotes: p.opts.LazyQuotes,
	})
	result.BytesRead = stats.BytesRead
	if err != nil {
		return fail(PhaseReading, err)
	}
	result.RowsRead = raw.Len()
	logger.Info("parse complete",
		"rows", raw.Len(),
		"columns", len(raw.Columns),
		"bytes", stats.BytesRead,
	)
	if missing := MissingColumns(raw, p.opts.Schema.Keys()); len(missing) > 0 && raw.Columns != nil {
		logger.Warn("output columns absent from input, writing empty fields", "columns", missing)
	}

	// 2. Transform
	if err := p.advance(PhaseTransforming); err != nil {
		return fail(PhaseTransforming, err)
	}
	names := make([]string, len(p.opts.Transforms))
	for i, t := range p.opts.Transforms {
		names[i] = t.Name()
	}
	logger.Debug("applying transforms", "names", names)
	transformed, err := ApplyTransforms(ctx, raw, p.opts.Transforms)
	if err != nil {
		return fail(PhaseTransforming, err)
	}
	logger.Info("transform complete",
		"transforms", len(p.opts.Transforms),
		"rows", transformed.Len(),
	)

	// 3. Write
	if err := p.advance(PhaseWriting); err != nil {
		return fail(PhaseWriting, err)
	}
	written, err := WriteFile(ctx, p.opts.Output, transformed, p.opts.Schema, WriteOptions{
		Comma: p.opts.Comma,
	})
	result.RowsWritten = written
	if err != nil {
		return fail(PhaseWriting, err)
	}
	logger.Info("write complete", "rows", written, "path", p.opts.Output)

	if err := p.advance(PhaseDone); err != nil {
		return fail(PhaseWriting, err)
	}
	result.Phase = PhaseDone
	result.Duration = time.Since(start)
	logger.Info("run finished", "duration_ms", result.Duration.Milliseconds())

	return result, nil
}
