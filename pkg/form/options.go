package form

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/frameform/pkg/metrics"
)

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for validation diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder. Nil recorders are ignored.
func WithRecorder(r metrics.Recorder) Option {
	return func(f *Form) {
		if r != nil {
			f.recorder = r
		}
	}
}

// WithConcurrency cleans up to n rows and evaluates up to n columns at the
// same time. Values below 2 keep validation sequential.
func WithConcurrency(n int) Option {
	return func(f *Form) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// WithBatchID overrides the generated batch identifier.
func WithBatchID(id uuid.UUID) Option {
	return func(f *Form) {
		f.id = id
	}
}
