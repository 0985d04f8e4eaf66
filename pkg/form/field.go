package form

import (
	"github.com/dmitrymomot/frameform/pkg/dataset"
	"github.com/dmitrymomot/frameform/pkg/validator"
)

// DefaultFunc resolves the default value of a field. Returning nil means the
// field has no default.
type DefaultFunc func() any

// CleanFunc is a per-field cleaning hook.
//
// row holds the values cleaned so far for the current row, including the
// field's own value after defaults and raw input were applied. The hook
// returns the final value, or an error to record a field-level failure; in
// that case the pre-hook value is kept.
type CleanFunc func(row dataset.Row) (any, error)

// Field declares one column of the batch.
type Field struct {
	Name     string
	Default  DefaultFunc
	Clean    CleanFunc
	Checks   []validator.Check
	Coerce   bool
	Nullable bool
}

// Value returns a DefaultFunc that always yields v.
func Value(v any) DefaultFunc {
	return func() any { return v }
}

func (f Field) column() *validator.Column {
	return validator.NewColumn(f.Name, validator.Options{
		Coerce:   f.Coerce,
		Nullable: f.Nullable,
	}, f.Checks...)
}
