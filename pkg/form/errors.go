package form

import "errors"

var (
	// ErrEmptyFieldName is returned when a field has no name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field")
)
