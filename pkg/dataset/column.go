package dataset

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Column is a named, read-only vector of values aligned by row index.
type Column struct {
	name   string
	values []any
}

// NewColumn creates a column from the given values. The slice is copied.
func NewColumn(name string, values []any) *Column {
	v := make([]any, len(values))
	copy(v, values)
	return &Column{name: name, values: v}
}

func (c *Column) Name() string { return c.name }

func (c *Column) Len() int { return len(c.values) }

// Value returns the value at row index i.
func (c *Column) Value(i int) any { return c.values[i] }

// Values returns a copy of the column values.
func (c *Column) Values() []any {
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}

// IsNull returns a mask that is true for every null value.
func (c *Column) IsNull() Mask {
	m := make(Mask, len(c.values))
	for i, v := range c.values {
		m[i] = IsNullValue(v)
	}
	return m
}

// IsIn returns a mask that is true for every value contained in set.
// Null values pass only when the set itself holds a null value.
func (c *Column) IsIn(set *Set) Mask {
	m := make(Mask, len(c.values))
	for i, v := range c.values {
		m[i] = set.Contains(v)
	}
	return m
}

// StrLenLE returns a mask that is true for every string value whose length
// in runes is at most max. Null and non-string values never pass.
func (c *Column) StrLenLE(max int) Mask {
	m := make(Mask, len(c.values))
	for i, v := range c.values {
		s, ok := stringValue(v)
		m[i] = ok && utf8.RuneCountInString(s) <= max
	}
	return m
}

// Coerced returns a copy of the column in which every string holding a
// numeric literal is replaced by its float64 value and every "true" or
// "false" (any case) by the matching bool. Other values are kept.
func (c *Column) Coerced() *Column {
	out := make([]any, len(c.values))
	for i, v := range c.values {
		out[i] = v
		s, ok := stringValue(v)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			out[i] = f
			continue
		}
		switch {
		case strings.EqualFold(s, "true"):
			out[i] = true
		case strings.EqualFold(s, "false"):
			out[i] = false
		}
	}
	return &Column{name: c.name, values: out}
}

func stringValue(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
