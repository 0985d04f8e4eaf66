package validator

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/frameform/pkg/dataset"
)

// Frame aggregates the results of several column validators into one dense,
// dataset-wide error map and a single validity flag.
//
// A Frame is single-use: it validates exactly one dataset.
type Frame struct {
	columns     []*Column
	concurrency int
	errors      RowErrors
	valid       bool
	used        bool
}

// FrameOption configures a Frame.
type FrameOption func(*Frame)

// WithConcurrency evaluates up to n columns at the same time.
// Values below 2 keep evaluation sequential.
func WithConcurrency(n int) FrameOption {
	return func(f *Frame) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// NewFrame creates a frame over columns in declaration order.
// Column names must be non-empty and unique.
func NewFrame(columns []*Column, opts ...FrameOption) (*Frame, error) {
	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		if c == nil {
			return nil, errors.Join(ErrNilColumn, fmt.Errorf("column at position %d", i))
		}
		if c.name == "" {
			return nil, errors.Join(ErrEmptyColumnName, fmt.Errorf("column at position %d", i))
		}
		if _, ok := seen[c.name]; ok {
			return nil, errors.Join(ErrDuplicateColumn, fmt.Errorf("column %q", c.name))
		}
		seen[c.name] = struct{}{}
	}

	f := &Frame{
		columns:     append([]*Column(nil), columns...),
		concurrency: 1,
		errors:      make(RowErrors),
		valid:       true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Validate runs every column validator against ds.
//
// Every row index of ds gets an entry in the error map, even when empty.
// A column that reports any failure marks the frame invalid and its errors
// are merged per row into the column's field slot.
func (f *Frame) Validate(ds *dataset.Dataset) error {
	if f.used {
		return ErrFrameUsed
	}
	f.used = true

	for i := range ds.Len() {
		f.errors.Ensure(i)
	}

	results := make([]RowErrors, len(f.columns))
	if f.concurrency > 1 && len(f.columns) > 1 {
		var g errgroup.Group
		g.SetLimit(f.concurrency)
		for i, c := range f.columns {
			g.Go(func() error {
				results[i] = c.Validate(ds)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, c := range f.columns {
			results[i] = c.Validate(ds)
		}
	}

	for _, errs := range results {
		if len(errs) == 0 {
			continue
		}
		f.valid = false
		f.merge(errs)
	}
	return nil
}

func (f *Frame) merge(errs RowErrors) {
	for idx, fields := range errs {
		row := f.errors.Ensure(idx)
		for field, list := range fields {
			row[field] = list
		}
	}
}

// Valid reports whether no column recorded a failure.
func (f *Frame) Valid() bool { return f.valid }

// Errors returns the merged error map keyed by row index.
func (f *Frame) Errors() RowErrors { return f.errors }

// Columns returns the validated column names in declaration order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.name
	}
	return names
}
