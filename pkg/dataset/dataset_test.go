package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frameform/pkg/dataset"
)

func TestFromRows(t *testing.T) {
	t.Run("materializes requested columns in order", func(t *testing.T) {
		rows := []dataset.Row{
			{"code": 1, "name": "a"},
			{"name": "b"},
		}
		ds := dataset.FromRows(rows, "name", "code")

		require.Equal(t, 2, ds.Len())
		assert.Equal(t, []string{"name", "code"}, ds.Columns())
		assert.Equal(t, []any{1, nil}, ds.Column("code").Values())
		assert.Equal(t, []any{"a", "b"}, ds.Column("name").Values())
	})

	t.Run("collects union of keys when no columns given", func(t *testing.T) {
		rows := []dataset.Row{
			{"b": 1, "a": 2},
			{"c": 3},
		}
		ds := dataset.FromRows(rows)

		assert.Equal(t, []string{"a", "b", "c"}, ds.Columns())
		assert.Equal(t, dataset.Row{"a": nil, "b": nil, "c": 3}, ds.Row(1))
	})

	t.Run("ignores duplicate column names", func(t *testing.T) {
		ds := dataset.FromRows([]dataset.Row{{"a": 1}}, "a", "a")
		assert.Equal(t, []string{"a"}, ds.Columns())
	})

	t.Run("unknown column reads as all null", func(t *testing.T) {
		ds := dataset.FromRows([]dataset.Row{{"a": 1}, {"a": 2}}, "a")

		assert.False(t, ds.Has("missing"))
		col := ds.Column("missing")
		assert.Equal(t, 2, col.Len())
		assert.Equal(t, dataset.Mask{true, true}, col.IsNull())
	})

	t.Run("empty input", func(t *testing.T) {
		ds := dataset.FromRows(nil, "a")
		assert.Equal(t, 0, ds.Len())
		assert.Empty(t, ds.Column("a").Values())
	})
}

func TestColumn_IsNull(t *testing.T) {
	var nilPtr *int
	col := dataset.NewColumn("x", []any{nil, nilPtr, math.NaN(), 0, "", []int(nil)})

	assert.Equal(t, dataset.Mask{true, true, true, false, false, true}, col.IsNull())
}

func TestColumn_IsIn(t *testing.T) {
	t.Run("matches across numeric kinds", func(t *testing.T) {
		col := dataset.NewColumn("code", []any{float64(1), int64(3), uint8(2), 2.5})
		set := dataset.NewSet(1, 2, 2.5)

		assert.Equal(t, dataset.Mask{true, false, true, true}, col.IsIn(set))
	})

	t.Run("null passes only when set holds null", func(t *testing.T) {
		col := dataset.NewColumn("code", []any{nil, 1})

		assert.Equal(t, dataset.Mask{false, true}, col.IsIn(dataset.NewSet(1)))
		assert.Equal(t, dataset.Mask{true, true}, col.IsIn(dataset.NewSet(1, nil)))
	})

	t.Run("strings do not match numbers", func(t *testing.T) {
		col := dataset.NewColumn("code", []any{"1"})
		assert.Equal(t, dataset.Mask{false}, col.IsIn(dataset.NewSet(1)))
	})

	t.Run("nil set matches nothing", func(t *testing.T) {
		col := dataset.NewColumn("code", []any{1})
		assert.Equal(t, dataset.Mask{false}, col.IsIn(nil))
	})
}

func TestColumn_StrLenLE(t *testing.T) {
	type label string
	col := dataset.NewColumn("name", []any{"abc", "abcdef", "zażół", label("ab"), 12, nil})

	assert.Equal(t, dataset.Mask{true, false, true, true, false, false}, col.StrLenLE(5))
}

func TestColumn_Coerced(t *testing.T) {
	col := dataset.NewColumn("amount", []any{"1.50", " 2 ", "abc", 3, nil, "TRUE", " false", "yes"})
	coerced := col.Coerced()

	assert.Equal(t, []any{1.5, float64(2), "abc", 3, nil, true, false, "yes"}, coerced.Values())
	assert.Equal(t, "1.50", col.Value(0), "original column must not change")
}

func TestMask(t *testing.T) {
	a := dataset.Mask{true, true, false, false}
	b := dataset.Mask{true, false, true, false}

	assert.Equal(t, dataset.Mask{true, false, false, false}, a.And(b))
	assert.Equal(t, dataset.Mask{true, true, true, false}, a.Or(b))
	assert.Equal(t, dataset.Mask{false, false, true, true}, a.Not())
	assert.Equal(t, []int{2, 3}, a.Failed())
	assert.False(t, a.All())
	assert.True(t, dataset.NewMask(3, true).All())
	assert.True(t, dataset.Mask{}.All())
	assert.Nil(t, dataset.NewMask(2, true).Failed())
	assert.Equal(t, dataset.Mask{true}, dataset.Mask{true, true}.And(dataset.Mask{true}))
}

func TestSet(t *testing.T) {
	s := dataset.NewSet(1, int64(1), 1.0, "a", "a", nil)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []any{1, "a", nil}, s.Values())
	assert.True(t, s.Contains(uint(1)))
	assert.True(t, s.Contains(math.NaN()))
	assert.False(t, s.Contains("b"))
}

func TestKey(t *testing.T) {
	type code int

	assert.Equal(t, int64(7), dataset.Key(code(7)))
	assert.Equal(t, int64(7), dataset.Key(7.0))
	assert.Equal(t, 7.5, dataset.Key(7.5))
	assert.Equal(t, dataset.Key(nil), dataset.Key((*int)(nil)))
	assert.Equal(t, uint64(math.MaxUint64), dataset.Key(uint64(math.MaxUint64)))
	assert.Equal(t, "[]int:[1 2]", dataset.Key([]int{1, 2}))
}
