package dataset

import (
	"fmt"
	"math"
	"reflect"
)

// nullKey is the normalized key of every null value (nil, nil pointers, NaN).
type nullKey struct{}

// Set is an immutable lookup set of candidate values built for fast
// membership tests. Values are normalized with Key on insertion.
type Set struct {
	keys   map[any]struct{}
	values []any
}

// NewSet builds a Set from the given candidate values.
// Duplicate values (after normalization) are stored once.
func NewSet(values ...any) *Set {
	s := &Set{
		keys:   make(map[any]struct{}, len(values)),
		values: make([]any, 0, len(values)),
	}
	for _, v := range values {
		k := Key(v)
		if _, ok := s.keys[k]; ok {
			continue
		}
		s.keys[k] = struct{}{}
		s.values = append(s.values, v)
	}
	return s
}

// Contains reports whether v is a member of the set.
func (s *Set) Contains(v any) bool {
	if s == nil {
		return false
	}
	_, ok := s.keys[Key(v)]
	return ok
}

// Len returns the number of distinct values in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Values returns the distinct candidate values in insertion order.
func (s *Set) Values() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.values))
	copy(out, s.values)
	return out
}

// Key returns the normalized comparison key of v.
//
// Integers of every kind and integral floats map to int64 (or uint64 when they
// overflow int64), other floats to float64, named string and bool kinds to
// their underlying type. Null values share a single key. Values that are not
// comparable fall back to their formatted representation.
func Key(v any) any {
	if IsNullValue(v) {
		return nullKey{}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return int64(u)
		}
		return u
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
		return f
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}

	if rv.Type().Comparable() {
		return v
	}
	return fmt.Sprintf("%T:%v", v, v)
}

// IsNullValue reports whether v is considered null: nil, a nil pointer,
// interface, map, slice or func, or a NaN float.
func IsNullValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}
