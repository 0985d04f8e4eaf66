package form

import "github.com/dmitrymomot/frameform/pkg/validator"

// Errors is the final error map of a form.
//
// Rows holds errors keyed by row index and field name. Global holds errors
// that are not bound to a row. Field-less errors are stored under
// validator.AllFields in either scope.
type Errors struct {
	Rows   validator.RowErrors
	Global validator.FieldErrors
}

func newErrors() *Errors {
	return &Errors{
		Rows:   make(validator.RowErrors),
		Global: make(validator.FieldErrors),
	}
}

// Row returns the errors recorded for row, or nil when none exist.
func (e *Errors) Row(row int) validator.FieldErrors {
	return e.Rows[row]
}

// Count returns the number of recorded errors in both scopes.
func (e *Errors) Count() int {
	return e.Rows.Count() + e.Global.Count()
}

// IsEmpty reports whether no error was recorded.
func (e *Errors) IsEmpty() bool {
	return e.Count() == 0
}
