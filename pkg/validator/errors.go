package validator

import "errors"

var (
	// ErrNilColumn is returned when a frame is built with a nil column validator.
	ErrNilColumn = errors.New("column validator is nil")

	// ErrEmptyColumnName is returned when a column validator has no name.
	ErrEmptyColumnName = errors.New("column validator name is empty")

	// ErrDuplicateColumn is returned when two column validators target the same column.
	ErrDuplicateColumn = errors.New("duplicate column validator")

	// ErrFrameUsed is returned when a frame is validated more than once.
	ErrFrameUsed = errors.New("validation frame already used")
)
