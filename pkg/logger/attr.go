package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// BatchID records the validation batch identifier under the key "batch_id".
// If id is nil, it returns an empty Attr.
func BatchID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("batch_id", id)
}

// Row records a zero-based row index under the key "row".
func Row(idx int) slog.Attr {
	return slog.Int("row", idx)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Count records a named count, e.g. Count("rows", 10).
func Count(name string, n int) slog.Attr {
	return slog.Int(name, n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
