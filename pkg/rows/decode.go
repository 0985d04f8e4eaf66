package rows

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/frameform/pkg/dataset"
)

// DecodeJSON reads a JSON array of objects. Numbers decode as float64.
func DecodeJSON(r io.Reader) ([]dataset.Row, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Join(ErrDecodeJSON, err)
	}
	return toRows(raw), nil
}

// DecodeYAML reads a YAML sequence of mappings.
func DecodeYAML(r io.Reader) ([]dataset.Row, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []dataset.Row{}, nil
		}
		return nil, errors.Join(ErrDecodeYAML, err)
	}
	return toRows(raw), nil
}

// DecodeCSV reads a header line followed by records. Every value is a
// string; an empty cell is kept as "" so that field defaults apply to it.
func DecodeCSV(r io.Reader) ([]dataset.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []dataset.Row{}, nil
	}
	if err != nil {
		return nil, errors.Join(ErrDecodeCSV, err)
	}

	out := []dataset.Row{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrDecodeCSV, err)
		}
		row := make(dataset.Row, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		out = append(out, row)
	}
	return out, nil
}

// Load decodes the file at path, choosing the format by extension:
// .json, .yaml, .yml or .csv.
func Load(path string) ([]dataset.Row, error) {
	var decode func(io.Reader) ([]dataset.Row, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		decode = DecodeJSON
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".csv":
		decode = DecodeCSV
	default:
		return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("extension %q", ext))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrOpenFile, err)
	}
	defer f.Close()

	return decode(f)
}

func toRows(raw []map[string]any) []dataset.Row {
	out := make([]dataset.Row, len(raw))
	for i, m := range raw {
		out[i] = dataset.Row(m)
		if out[i] == nil {
			out[i] = dataset.Row{}
		}
	}
	return out
}
