package form

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/frameform/pkg/dataset"
	"github.com/dmitrymomot/frameform/pkg/logger"
	"github.com/dmitrymomot/frameform/pkg/metrics"
	"github.com/dmitrymomot/frameform/pkg/validator"
)

type verdict uint8

const (
	verdictUncomputed verdict = iota
	verdictValid
	verdictInvalid
)

// Form validates one batch of rows against a set of fields.
//
// A Form is single-use and not safe for concurrent use. Its verdict is
// computed once; later changes to the input do not invalidate it.
type Form struct {
	id          uuid.UUID
	fields      []Field
	columns     []*validator.Column
	data        []dataset.Row
	logger      *slog.Logger
	recorder    metrics.Recorder
	concurrency int

	cleaned  []dataset.Row
	cleanRan bool
	rowValid bool
	errors   *Errors
	dataset  *dataset.Dataset
	verdict  verdict
}

// New creates a form over data. Field names must be non-empty and unique.
// Fields with checks become column validators in declaration order.
func New(fields []Field, data []dataset.Row, opts ...Option) (*Form, error) {
	seen := make(map[string]struct{}, len(fields))
	var columns []*validator.Column
	for i, field := range fields {
		if field.Name == "" {
			return nil, errors.Join(ErrEmptyFieldName, fmt.Errorf("field at position %d", i))
		}
		if _, ok := seen[field.Name]; ok {
			return nil, errors.Join(ErrDuplicateField, fmt.Errorf("field %q", field.Name))
		}
		seen[field.Name] = struct{}{}
		if len(field.Checks) > 0 {
			columns = append(columns, field.column())
		}
	}

	f := &Form{
		id:          uuid.New(),
		fields:      append([]Field(nil), fields...),
		columns:     columns,
		data:        append([]dataset.Row(nil), data...),
		logger:      slog.Default(),
		recorder:    metrics.Nop{},
		concurrency: 1,
		rowValid:    true,
		errors:      newErrors(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// ID returns the batch identifier attached to log records.
func (f *Form) ID() uuid.UUID { return f.id }

// Clean runs the row cleaner once and returns the cleaned rows.
//
// When cleaning records any field-level failure the verdict is cached as
// invalid, so a following IsValid returns false without running column checks.
// The run is observed at that point.
func (f *Form) Clean() []dataset.Row {
	start := time.Now()
	f.clean()
	if !f.rowValid && f.verdict == verdictUncomputed {
		f.verdict = verdictInvalid
		f.observe(false, 0, time.Since(start))
	}
	return f.cleaned
}

func (f *Form) clean() {
	if f.cleanRan {
		return
	}
	f.cleanRan = true

	results := f.cleanRows()
	f.cleaned = make([]dataset.Row, len(results))
	for i, res := range results {
		f.cleaned[i] = res.values
		row := f.errors.Rows.Ensure(i)
		for _, field := range f.fields {
			if list := res.errs[field.Name]; len(list) > 0 {
				row.Add(field.Name, list...)
				f.rowValid = false
			}
		}
	}
}

// IsValid reports whether the batch passed both row cleaning and column
// checks. The verdict is computed on the first call and cached.
//
// Without any column checks the batch is never valid.
func (f *Form) IsValid() bool {
	if f.verdict != verdictUncomputed {
		return f.verdict == verdictValid
	}

	start := time.Now()
	f.clean()

	valid := false
	columnErrors := 0
	if len(f.columns) > 0 {
		frameValid, n := f.validateColumns()
		valid = frameValid && f.rowValid
		columnErrors = n
	}

	f.verdict = verdictInvalid
	if valid {
		f.verdict = verdictValid
	}

	f.observe(valid, columnErrors, time.Since(start))
	return valid
}

// observe records metrics and the summary log line of a run whose verdict was
// just cached.
func (f *Form) observe(valid bool, columnErrors int, duration time.Duration) {
	rowErrors := f.errors.Rows.Count() - columnErrors
	globalErrors := f.errors.Global.Count()
	f.recorder.ObserveValidation(metrics.Result{
		Valid:        valid,
		Rows:         len(f.data),
		RowErrors:    rowErrors,
		ColumnErrors: columnErrors,
		GlobalErrors: globalErrors,
		Duration:     duration,
	})
	f.logger.Info("batch validated",
		logger.Component("form"),
		logger.BatchID(f.id),
		slog.Bool("valid", valid),
		logger.Count("rows", len(f.data)),
		logger.Count("columns", len(f.columns)),
		logger.Count("row_errors", rowErrors),
		logger.Count("column_errors", columnErrors),
		logger.Count("global_errors", globalErrors),
		logger.Duration(duration),
	)
}

// validateColumns runs a fresh frame over the cleaned rows and appends its
// errors after any row-level errors for the same cell.
func (f *Form) validateColumns() (bool, int) {
	names := make([]string, len(f.fields))
	for i, field := range f.fields {
		names[i] = field.Name
	}
	f.dataset = dataset.FromRows(f.cleaned, names...)

	frame, err := validator.NewFrame(f.columns, validator.WithConcurrency(f.concurrency))
	if err != nil {
		f.logger.Error("failed to build validation frame", logger.BatchID(f.id), logger.Error(err))
		f.errors.Global.Add(validator.AllFields, validator.NewError(validator.AllFields, err.Error()))
		return false, 0
	}
	if err := frame.Validate(f.dataset); err != nil {
		f.logger.Error("failed to run validation frame", logger.BatchID(f.id), logger.Error(err))
		f.errors.Global.Add(validator.AllFields, validator.NewError(validator.AllFields, err.Error()))
		return false, 0
	}

	frameErrors := frame.Errors()
	for idx, fields := range frameErrors {
		row := f.errors.Rows.Ensure(idx)
		for field, list := range fields {
			row.Add(field, list...)
		}
	}
	return frame.Valid(), frameErrors.Count()
}

// AddError records an error that is not bound to a row.
// An empty field stores the error under validator.AllFields.
//
// Errors added before the verdict is computed make the batch invalid.
func (f *Form) AddError(field, message string) {
	if field == "" {
		field = validator.AllFields
	}
	f.errors.Global.Add(field, validator.NewError(field, message))
	f.rowValid = false
}

// AddRowError records an error for field in the given row.
// An empty field stores the error under validator.AllFields.
//
// Errors added before the verdict is computed make the batch invalid.
func (f *Form) AddRowError(row int, field, message string) {
	if field == "" {
		field = validator.AllFields
	}
	f.errors.Rows.Add(row, field, validator.NewError(field, message))
	f.rowValid = false
}

// Errors returns the error map. It is populated by Clean, IsValid, AddError
// and AddRowError.
func (f *Form) Errors() *Errors { return f.errors }

// CleanedData returns the cleaned rows, or nil before cleaning ran.
func (f *Form) CleanedData() []dataset.Row { return f.cleaned }

// Dataset returns the dataset assembled for column checks, or nil when the
// column checks did not run.
func (f *Form) Dataset() *dataset.Dataset { return f.dataset }

// Fields returns the declared fields in order.
func (f *Form) Fields() []Field {
	return append([]Field(nil), f.fields...)
}
