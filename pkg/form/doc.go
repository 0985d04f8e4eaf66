// Package form validates a whole batch of records the way a web form validates a single submission.
//
// A Form is built from an ordered list of Field declarations and the raw rows
// of a batch. Validation has two phases:
//
//  1. Row cleaning. For every row and every field in order the default is
//     resolved, a present (truthy) raw value replaces it, and the optional
//     Clean hook computes the final value. A hook error becomes a field-level
//     error for that row.
//  2. Column checks. The cleaned rows are assembled into a dataset.Dataset and
//     a validator.Frame runs the checks of every field over whole columns.
//
// Both error sources end up in one Errors map keyed by row index and field
// name. Every row index gets an entry, even when it has no errors.
//
// # Usage
//
//	f, err := form.New([]form.Field{
//	    {
//	        Name:   "code",
//	        Checks: []validator.Check{validator.NewMembershipCheck("code", []any{1, 2})},
//	    },
//	    {
//	        Name:    "qty",
//	        Default: form.Value(1),
//	        Clean: func(row dataset.Row) (any, error) {
//	            qty, _ := row["qty"].(int)
//	            return qty, validator.Apply(validator.MaxNum("qty", qty, 100))
//	        },
//	    },
//	}, rows)
//	if err != nil {
//	    return err
//	}
//	if !f.IsValid() {
//	    for idx, fields := range f.Errors().Rows {
//	        // report fields.Messages(...) for row idx
//	    }
//	}
//
// # Verdict
//
// IsValid computes the verdict once and caches it. A batch without any column
// checks is never valid. Call Clean first to stop early: when row cleaning
// already failed, IsValid returns false without running column checks.
//
// # Concurrency
//
// WithConcurrency cleans rows and evaluates columns on several goroutines.
// Hooks then run concurrently for different rows and must not share mutable
// state. Results are merged in row and column order, so the output does not
// depend on scheduling. A Form itself must not be used from several
// goroutines.
package form
