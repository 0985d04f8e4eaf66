// Package dataset provides a small in-memory columnar table used to evaluate
// whole-column predicates over a batch of records.
//
// A Dataset is built once from an ordered slice of Row values and stores every
// column as a contiguous slice of values aligned by row index. Predicates such
// as IsNull, IsIn or StrLenLE run over an entire column in one pass and return
// a Mask: a boolean vector with one entry per row where true means the row
// passed.
//
// # Usage
//
//	ds := dataset.FromRows(rows, "code", "name")
//
//	allowed := dataset.NewSet(1, 2, 3)
//	mask := ds.Column("code").IsIn(allowed)
//	for _, idx := range mask.Failed() {
//	    // idx is a row index that holds a value outside of allowed
//	}
//
// # Value Semantics
//
// Values are stored as they were supplied. Membership tests compare
// normalized keys: every Go integer and float kind compares by numeric value,
// so float64(1) decoded from JSON matches int64(1) loaded from a database.
// Length predicates count runes and treat non-string values as failures.
//
// Columns that were requested but absent from every row read as all-null
// columns of the dataset's length, so callers never have to guard against a
// missing column.
//
// # Thread Safety
//
// A Dataset is immutable after construction and safe for concurrent reads.
package dataset
