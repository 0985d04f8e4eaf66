package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldType names the storage kind of a model field.
type FieldType string

const (
	TypeChar       FieldType = "char"
	TypeText       FieldType = "text"
	TypeInteger    FieldType = "integer"
	TypeDecimal    FieldType = "decimal"
	TypeBoolean    FieldType = "boolean"
	TypeDate       FieldType = "date"
	TypeForeignKey FieldType = "foreign_key"
	TypeManyToMany FieldType = "many_to_many"
)

// IsRelation reports whether values of the type reference rows of another table.
func (t FieldType) IsRelation() bool {
	return t == TypeForeignKey || t == TypeManyToMany
}

// IsNumeric reports whether values of the type are compared as numbers.
func (t FieldType) IsNumeric() bool {
	return t == TypeInteger || t == TypeDecimal || t.IsRelation()
}

// Coerces reports whether textual cells of the type are converted to numbers
// or booleans before column checks run.
func (t FieldType) Coerces() bool {
	return t.IsNumeric() || t == TypeBoolean
}

func (t FieldType) valid() bool {
	switch t {
	case TypeChar, TypeText, TypeInteger, TypeDecimal, TypeBoolean, TypeDate, TypeForeignKey, TypeManyToMany:
		return true
	}
	return false
}

// Choice is one allowed value of a field. In YAML it is written as a bare
// value, a [value, label] pair or a {value, label} mapping.
type Choice struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Choice) UnmarshalYAML(unmarshal func(any) error) error {
	type plain Choice
	var obj plain
	if err := unmarshal(&obj); err == nil {
		*c = Choice(obj)
		return nil
	}

	var pair []any
	if err := unmarshal(&pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("choice pair must have 2 items, got %d", len(pair))
		}
		c.Value = pair[0]
		c.Label = fmt.Sprint(pair[1])
		return nil
	}

	var single any
	if err := unmarshal(&single); err != nil {
		return err
	}
	c.Value = single
	c.Label = fmt.Sprint(single)
	return nil
}

// FieldDef describes one model field.
type FieldDef struct {
	Name      string    `yaml:"name"`
	Type      FieldType `yaml:"type"`
	MaxLength int       `yaml:"max_length"`
	Choices   []Choice  `yaml:"choices"`
	Null      bool      `yaml:"null"`
	Blank     bool      `yaml:"blank"`
	Default   any       `yaml:"default"`
	// Relation is the related table of foreign_key and many_to_many fields.
	Relation string `yaml:"relation"`
}

// Model is a named, ordered list of fields plus optional inline relation ids.
type Model struct {
	Name      string          `yaml:"name"`
	Fields    []FieldDef      `yaml:"fields"`
	Relations StaticRelations `yaml:"relations"`
}

// Field returns the definition of the named field.
func (m *Model) Field(name string) (FieldDef, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldNames returns the field names in declaration order.
func (m *Model) FieldNames() []string {
	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}
	return names
}

// ParseYAML decodes and checks a model document.
func ParseYAML(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(ErrParseSchema, err)
	}
	if err := m.check(); err != nil {
		return nil, errors.Join(ErrParseSchema, err)
	}
	return &m, nil
}

// LoadYAML reads a model document from path.
func LoadYAML(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}
	return ParseYAML(data)
}

func (m *Model) check() error {
	seen := make(map[string]struct{}, len(m.Fields))
	for i, f := range m.Fields {
		if f.Name == "" {
			return fmt.Errorf("field at position %d has no name", i)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("field %q declared twice", f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Type == "" {
			m.Fields[i].Type = TypeChar
		} else if !f.Type.valid() {
			return errors.Join(ErrUnknownFieldType, fmt.Errorf("field %q: %q", f.Name, f.Type))
		}
		if m.Fields[i].Type.IsRelation() && f.Relation == "" {
			return errors.Join(ErrMissingRelation, fmt.Errorf("field %q", f.Name))
		}
	}
	return nil
}
