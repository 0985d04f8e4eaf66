package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frameform/pkg/dataset"
	"github.com/dmitrymomot/frameform/pkg/validator"
)

func TestColumn_Validate(t *testing.T) {
	t.Run("accumulates every failing check in declaration order", func(t *testing.T) {
		ds := dataset.FromRows([]dataset.Row{{"code": "abcdef"}, {"code": "ab"}}, "code")
		col := validator.NewColumn("code", validator.Options{},
			validator.NewMembershipCheck("code", []any{"ab"}),
			validator.NewLengthCheck("code", 3),
		)

		errs := col.Validate(ds)

		require.Len(t, errs, 1)
		assert.Equal(t, []string{
			"cell contains a value that does not match any of the allowed values",
			"cell exceeds the maximum length (3 characters)",
		}, errs[0].Messages("code"))
	})

	t.Run("returns fresh errors on every call", func(t *testing.T) {
		ds := dataset.FromRows([]dataset.Row{{"code": 3}}, "code")
		col := validator.NewColumn("code", validator.Options{},
			validator.NewMembershipCheck("code", []any{1}),
		)

		first := col.Validate(ds)
		second := col.Validate(ds)

		assert.Len(t, first[0]["code"], 1)
		assert.Len(t, second[0]["code"], 1)
	})

	t.Run("skips nil checks", func(t *testing.T) {
		col := validator.NewColumn("code", validator.Options{Nullable: true}, nil)
		assert.Empty(t, col.Checks())
		assert.True(t, col.Options().Nullable)
		assert.Equal(t, "code", col.Name())
	})
}

func TestNewFrame(t *testing.T) {
	t.Run("rejects duplicate columns", func(t *testing.T) {
		_, err := validator.NewFrame([]*validator.Column{
			validator.NewColumn("code", validator.Options{}),
			validator.NewColumn("code", validator.Options{}),
		})
		assert.ErrorIs(t, err, validator.ErrDuplicateColumn)
	})

	t.Run("rejects nil columns", func(t *testing.T) {
		_, err := validator.NewFrame([]*validator.Column{nil})
		assert.ErrorIs(t, err, validator.ErrNilColumn)
	})

	t.Run("rejects unnamed columns", func(t *testing.T) {
		_, err := validator.NewFrame([]*validator.Column{validator.NewColumn("", validator.Options{})})
		assert.ErrorIs(t, err, validator.ErrEmptyColumnName)
	})

	t.Run("starts valid", func(t *testing.T) {
		f, err := validator.NewFrame(nil)
		require.NoError(t, err)
		assert.True(t, f.Valid())
		assert.Empty(t, f.Columns())
	})
}

func TestFrame_Validate(t *testing.T) {
	newFrame := func(t *testing.T, opts ...validator.FrameOption) *validator.Frame {
		t.Helper()
		f, err := validator.NewFrame([]*validator.Column{
			validator.NewColumn("code", validator.Options{},
				validator.NewMembershipCheck("code", []any{1, 2}),
			),
			validator.NewColumn("name", validator.Options{},
				validator.NewLengthCheck("name", 5),
			),
		}, opts...)
		require.NoError(t, err)
		return f
	}

	t.Run("membership scenario", func(t *testing.T) {
		ds := dataset.FromRows([]dataset.Row{
			{"code": 1, "name": "a"},
			{"code": 3, "name": "b"},
			{"code": 2, "name": "c"},
		}, "code", "name")
		f := newFrame(t)

		require.NoError(t, f.Validate(ds))

		assert.False(t, f.Valid())
		errs := f.Errors()
		require.Len(t, errs, 3)
		assert.Empty(t, errs[0])
		assert.Equal(t, []string{"cell contains a value that does not match any of the allowed values"}, errs[1].Messages("code"))
		assert.Empty(t, errs[2])
	})

	t.Run("length scenario", func(t *testing.T) {
		ds := dataset.FromRows([]dataset.Row{
			{"code": 1, "name": "abc"},
			{"code": 1, "name": "abcdef"},
		}, "code", "name")
		f := newFrame(t)

		require.NoError(t, f.Validate(ds))

		assert.False(t, f.Valid())
		assert.Empty(t, f.Errors()[0])
		assert.Equal(t, []string{"cell exceeds the maximum length (5 characters)"}, f.Errors()[1].Messages("name"))
		assert.Equal(t, 5, f.Errors()[1]["name"][0].TranslationValues["max"])
	})

	t.Run("dense coverage for valid dataset", func(t *testing.T) {
		rows := make([]dataset.Row, 10)
		for i := range rows {
			rows[i] = dataset.Row{"code": 1, "name": "ok"}
		}
		f := newFrame(t)

		require.NoError(t, f.Validate(dataset.FromRows(rows, "code", "name")))

		assert.True(t, f.Valid())
		require.Len(t, f.Errors(), 10)
		for i := range 10 {
			fields, ok := f.Errors()[i]
			assert.True(t, ok, "row %d must have an entry", i)
			assert.Empty(t, fields)
		}
	})

	t.Run("concurrent evaluation merges the same result", func(t *testing.T) {
		rows := []dataset.Row{
			{"code": 9, "name": "toolongvalue"},
			{"code": 1, "name": "ok"},
		}
		seq := newFrame(t)
		par := newFrame(t, validator.WithConcurrency(4))

		require.NoError(t, seq.Validate(dataset.FromRows(rows, "code", "name")))
		require.NoError(t, par.Validate(dataset.FromRows(rows, "code", "name")))

		assert.Equal(t, seq.Errors(), par.Errors())
		assert.Equal(t, []string{"code", "name"}, par.Columns())
		assert.Len(t, par.Errors()[0], 2)
	})

	t.Run("is single use", func(t *testing.T) {
		ds := dataset.FromRows([]dataset.Row{{"code": 3}}, "code")
		f := newFrame(t)

		require.NoError(t, f.Validate(ds))
		assert.ErrorIs(t, f.Validate(ds), validator.ErrFrameUsed)
		assert.Len(t, f.Errors()[0]["code"], 1)
	})
}
