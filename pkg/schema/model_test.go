package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frameform/pkg/schema"
)

const invoiceYAML = `
name: invoice
fields:
  - name: number
    type: char
    max_length: 16
  - name: status
    choices:
      - [draft, Draft]
      - value: sent
        label: Sent
      - paid
    default: draft
  - name: amount
    type: decimal
    blank: true
  - name: customer
    type: foreign_key
    relation: customers
    null: true
  - name: note
relations:
  customers: [1, 2, 3]
`

func TestParseYAML(t *testing.T) {
	t.Run("decodes fields and relations", func(t *testing.T) {
		m, err := schema.ParseYAML([]byte(invoiceYAML))
		require.NoError(t, err)

		assert.Equal(t, "invoice", m.Name)
		assert.Equal(t, []string{"number", "status", "amount", "customer", "note"}, m.FieldNames())
		assert.Equal(t, []any{1, 2, 3}, m.Relations["customers"])

		status, ok := m.Field("status")
		require.True(t, ok)
		assert.Equal(t, []schema.Choice{
			{Value: "draft", Label: "Draft"},
			{Value: "sent", Label: "Sent"},
			{Value: "paid", Label: "paid"},
		}, status.Choices)
		assert.Equal(t, "draft", status.Default)

		note, ok := m.Field("note")
		require.True(t, ok)
		assert.Equal(t, schema.TypeChar, note.Type, "type defaults to char")

		_, ok = m.Field("missing")
		assert.False(t, ok)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("fields:\n  - name: a\n    type: blob\n"))
		assert.ErrorIs(t, err, schema.ErrParseSchema)
		assert.ErrorIs(t, err, schema.ErrUnknownFieldType)
	})

	t.Run("rejects relation without table", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("fields:\n  - name: a\n    type: foreign_key\n"))
		assert.ErrorIs(t, err, schema.ErrMissingRelation)
	})

	t.Run("rejects duplicate and unnamed fields", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("fields:\n  - name: a\n  - name: a\n"))
		assert.ErrorIs(t, err, schema.ErrParseSchema)

		_, err = schema.ParseYAML([]byte("fields:\n  - type: char\n"))
		assert.ErrorIs(t, err, schema.ErrParseSchema)
	})

	t.Run("rejects malformed choice pair", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("fields:\n  - name: a\n    choices: [[1, 2, 3]]\n"))
		assert.ErrorIs(t, err, schema.ErrParseSchema)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("fields: [\n"))
		assert.ErrorIs(t, err, schema.ErrParseSchema)
	})
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(invoiceYAML), 0o600))

	m, err := schema.LoadYAML(path)
	require.NoError(t, err)
	assert.Len(t, m.Fields, 5)

	_, err = schema.LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, schema.ErrReadSchema)
}

func TestFieldType(t *testing.T) {
	assert.True(t, schema.TypeForeignKey.IsRelation())
	assert.True(t, schema.TypeManyToMany.IsNumeric())
	assert.True(t, schema.TypeDecimal.IsNumeric())
	assert.False(t, schema.TypeDecimal.IsRelation())
	assert.True(t, schema.TypeInteger.IsNumeric())
	assert.True(t, schema.TypeBoolean.Coerces())
	assert.False(t, schema.TypeBoolean.IsNumeric())
	assert.False(t, schema.TypeChar.Coerces())
	assert.False(t, schema.TypeText.Coerces())
}
