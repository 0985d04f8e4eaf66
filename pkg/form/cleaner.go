package form

import (
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/frameform/pkg/dataset"
	"github.com/dmitrymomot/frameform/pkg/logger"
	"github.com/dmitrymomot/frameform/pkg/validator"
)

type cleanedRow struct {
	values dataset.Row
	errs   validator.FieldErrors
}

// cleanRows cleans every input row and returns the results in row order.
// Rows are independent, so they may be processed by several workers; each
// worker owns the map of the row it cleans.
func (f *Form) cleanRows() []cleanedRow {
	out := make([]cleanedRow, len(f.data))
	if f.concurrency > 1 && len(f.data) > 1 {
		var g errgroup.Group
		g.SetLimit(f.concurrency)
		for i, raw := range f.data {
			g.Go(func() error {
				out[i] = f.cleanRow(i, raw)
				return nil
			})
		}
		_ = g.Wait()
		return out
	}

	for i, raw := range f.data {
		out[i] = f.cleanRow(i, raw)
	}
	return out
}

// cleanRow applies default, raw value and hook for every field in order.
func (f *Form) cleanRow(idx int, raw dataset.Row) cleanedRow {
	res := cleanedRow{values: make(dataset.Row, len(f.fields))}
	for _, field := range f.fields {
		var value any
		if field.Default != nil {
			value = field.Default()
		}
		if v, ok := raw[field.Name]; ok && Truthy(v) {
			value = v
		}
		res.values[field.Name] = value

		if field.Clean == nil {
			continue
		}
		cleaned, err := field.Clean(res.values)
		if err != nil {
			if !validator.IsValidationError(err) {
				f.logger.Debug("cleaning hook returned a plain error",
					logger.BatchID(f.id),
					logger.Row(idx),
					logger.Field(field.Name),
					logger.Error(err),
				)
			}
			if res.errs == nil {
				res.errs = make(validator.FieldErrors)
			}
			res.errs.Add(field.Name, validator.FromError(field.Name, err)...)
			continue
		}
		res.values[field.Name] = cleaned
	}
	return res
}
