package validator

import (
	"fmt"

	"github.com/dmitrymomot/frameform/pkg/dataset"
)

// Options are per-column settings passed to every check of the column.
type Options struct {
	// Coerce converts numeric-looking strings to numbers before evaluation.
	Coerce bool
	// Nullable marks the column as accepting null values.
	Nullable bool
}

// Check is a predicate bound to one column and evaluated over a whole dataset.
//
// The set of implementations is closed: MembershipCheck and LengthCheck.
type Check interface {
	// ColumnName is the dataset column the check reads.
	ColumnName() string
	// Validate returns a pass/fail mask aligned by row index.
	Validate(ds *dataset.Dataset, opts Options) dataset.Mask
	// Failure is the error recorded for every failing row.
	Failure() ValidationError

	sealed()
}

// MembershipCheck passes rows whose value is one of a fixed candidate set.
type MembershipCheck struct {
	column     string
	candidates *dataset.Set
	failure    ValidationError
}

// NewMembershipCheck creates a membership check for column.
// Candidates are copied into a lookup set once.
func NewMembershipCheck(column string, candidates []any) *MembershipCheck {
	set := dataset.NewSet(candidates...)
	return &MembershipCheck{
		column:     column,
		candidates: set,
		failure: ValidationError{
			Field:          column,
			Message:        "cell contains a value that does not match any of the allowed values",
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          column,
				"allowed_values": set.Values(),
			},
		},
	}
}

func (c *MembershipCheck) ColumnName() string { return c.column }

// Candidates returns the distinct candidate values.
func (c *MembershipCheck) Candidates() []any { return c.candidates.Values() }

// Validate marks a row as passing when its value is a candidate. For nullable
// columns the membership mask is combined with the null mask by AND.
func (c *MembershipCheck) Validate(ds *dataset.Dataset, opts Options) dataset.Mask {
	col := columnFor(ds, c.column, opts)
	pass := col.IsIn(c.candidates)
	if opts.Nullable {
		pass = pass.And(col.IsNull())
	}
	return pass
}

func (c *MembershipCheck) Failure() ValidationError { return c.failure }

func (*MembershipCheck) sealed() {}

// LengthCheck passes rows whose string value has at most MaxLength characters.
type LengthCheck struct {
	column    string
	maxLength int
	failure   ValidationError
}

// NewLengthCheck creates a maximum length check for column.
func NewLengthCheck(column string, maxLength int) *LengthCheck {
	return &LengthCheck{
		column:    column,
		maxLength: maxLength,
		failure: ValidationError{
			Field:          column,
			Message:        fmt.Sprintf("cell exceeds the maximum length (%d characters)", maxLength),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": column,
				"max":   maxLength,
			},
		},
	}
}

func (c *LengthCheck) ColumnName() string { return c.column }

func (c *LengthCheck) MaxLength() int { return c.maxLength }

// Validate marks a row as passing when its value is a string within the
// limit. Null and non-string values fail. For nullable columns the length
// mask is combined with the null mask by AND.
func (c *LengthCheck) Validate(ds *dataset.Dataset, opts Options) dataset.Mask {
	col := columnFor(ds, c.column, opts)
	pass := col.StrLenLE(c.maxLength)
	if opts.Nullable {
		pass = pass.And(col.IsNull())
	}
	return pass
}

func (c *LengthCheck) Failure() ValidationError { return c.failure }

func (*LengthCheck) sealed() {}

// Kind names the variant of c. It panics on a check type it does not know.
func Kind(c Check) string {
	switch c.(type) {
	case *MembershipCheck:
		return "membership"
	case *LengthCheck:
		return "length"
	default:
		panic(fmt.Sprintf("validator: unknown check type %T", c))
	}
}

func columnFor(ds *dataset.Dataset, name string, opts Options) *dataset.Column {
	col := ds.Column(name)
	if opts.Coerce {
		return col.Coerced()
	}
	return col
}
