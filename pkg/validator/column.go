package validator

import "github.com/dmitrymomot/frameform/pkg/dataset"

// Column runs an ordered list of checks for one column.
// It holds no per-run state and can be shared across frames.
type Column struct {
	name   string
	checks []Check
	opts   Options
}

// NewColumn creates a column validator. Nil checks are skipped.
func NewColumn(name string, opts Options, checks ...Check) *Column {
	clean := make([]Check, 0, len(checks))
	for _, c := range checks {
		if c != nil {
			clean = append(clean, c)
		}
	}
	return &Column{name: name, checks: clean, opts: opts}
}

func (c *Column) Name() string { return c.name }

func (c *Column) Options() Options { return c.opts }

// Checks returns the checks in declaration order.
func (c *Column) Checks() []Check {
	out := make([]Check, len(c.checks))
	copy(out, c.checks)
	return out
}

// Validate runs every check and returns the failures keyed by row index and
// column name. All checks run even when an earlier one failed a row, so a
// cell collects one error per failing check in declaration order.
func (c *Column) Validate(ds *dataset.Dataset) RowErrors {
	errs := make(RowErrors)
	for _, check := range c.checks {
		mask := check.Validate(ds, c.opts)
		failure := check.Failure()
		for _, idx := range mask.Failed() {
			errs.Add(idx, c.name, failure)
		}
	}
	return errs
}
