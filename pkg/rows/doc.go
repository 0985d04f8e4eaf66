// Package rows decodes input batches into []dataset.Row.
//
// JSON input is an array of objects, YAML input a sequence of mappings and CSV
// input a header line followed by records. Load picks the decoder from the
// file extension.
package rows
