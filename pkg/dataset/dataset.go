package dataset

import (
	"maps"
	"slices"
)

// Row is a single input record mapping field names to raw values.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered, column-oriented collection of rows indexed 0..N-1.
type Dataset struct {
	n       int
	names   []string
	columns map[string]*Column
}

// FromRows builds a dataset from rows.
//
// When columns are given, only those columns are materialized, in that order.
// Otherwise the column set is the union of all row keys in first-seen order,
// with keys of a single row taken in lexical order.
// A missing key in a row stores a nil value at that index.
func FromRows(rows []Row, columns ...string) *Dataset {
	names := columns
	if len(names) == 0 {
		names = collectNames(rows)
	}

	ds := &Dataset{
		n:       len(rows),
		names:   make([]string, 0, len(names)),
		columns: make(map[string]*Column, len(names)),
	}
	for _, name := range names {
		if _, ok := ds.columns[name]; ok {
			continue
		}
		values := make([]any, len(rows))
		for i, row := range rows {
			values[i] = row[name]
		}
		ds.names = append(ds.names, name)
		ds.columns[name] = &Column{name: name, values: values}
	}
	return ds
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.n }

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Has reports whether the dataset materialized the named column.
func (d *Dataset) Has(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// Column returns the named column. An unknown name yields an all-null column
// of the dataset's length.
func (d *Dataset) Column(name string) *Column {
	if c, ok := d.columns[name]; ok {
		return c
	}
	return &Column{name: name, values: make([]any, d.n)}
}

// Row reassembles the record at index i from the materialized columns.
func (d *Dataset) Row(i int) Row {
	row := make(Row, len(d.names))
	for _, name := range d.names {
		row[name] = d.columns[name].values[i]
	}
	return row
}

func collectNames(rows []Row) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, row := range rows {
		for _, k := range slices.Sorted(maps.Keys(row)) {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			names = append(names, k)
		}
	}
	return names
}
