// Package validator provides column-level validation for tabular batches:
// checks evaluated over a whole dataset at once, column validators that
// collect their failures, and a frame that merges everything into one dense
// error map with a single validity flag.
//
// # Architecture
//
// The package is organized leaf-first:
//
//   - Check            – sealed interface with two variants, MembershipCheck and
//     LengthCheck. A check reads one column of a dataset.Dataset and
//     returns a dataset.Mask with one pass/fail entry per row.
//   - Column           – ordered checks for one column plus Options
//     (Coerce, Nullable). Runs every check without early exit.
//   - Frame            – the set of columns for a dataset. Pre-populates an
//     empty entry for every row index, runs the columns (optionally in
//     parallel) and merges their results in declaration order.
//   - ValidationError  – a single failure with translation key and values.
//   - FieldErrors / RowErrors – append-only nested error maps.
//
// Checks and columns hold no per-run state. Build them once, for instance
// after resolving expensive candidate lists, and reuse them across frames.
//
// # Usage
//
//	codes := validator.NewColumn("code", validator.Options{},
//	    validator.NewMembershipCheck("code", []any{1, 2}),
//	)
//	names := validator.NewColumn("name", validator.Options{},
//	    validator.NewLengthCheck("name", 50),
//	)
//
//	frame, err := validator.NewFrame([]*validator.Column{codes, names})
//	if err != nil {
//	    return err // duplicate or unnamed columns
//	}
//	if err := frame.Validate(ds); err != nil {
//	    return err
//	}
//	if !frame.Valid() {
//	    for idx, fields := range frame.Errors() {
//	        // fields.Messages("code") ...
//	    }
//	}
//
// # Nullable Columns
//
// For nullable columns both checks combine their own mask with the column's
// null mask using AND, so a row passes only when it satisfies the check and is
// null at the same time.
//
// # Cell Rules
//
// Rule and Apply evaluate ad-hoc predicates for a single cell. Cleaning hooks
// return the resulting ValidationErrors, and FromError converts any hook error
// into entries for the error map.
package validator
