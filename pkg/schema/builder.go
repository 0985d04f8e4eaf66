package schema

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/frameform/pkg/form"
	"github.com/dmitrymomot/frameform/pkg/validator"
)

// Builder derives form fields from model definitions.
//
// Relation ids are loaded once per relation name and reused by every later
// call, including calls for other models. The membership check of a relation
// field is built once per (relation, field) pair. A Builder is safe for
// concurrent use.
type Builder struct {
	source RelationSource

	mu     sync.RWMutex
	cache  map[string][]any
	checks map[relationField]*validator.MembershipCheck
	group  singleflight.Group
}

type relationField struct {
	relation string
	field    string
}

// NewBuilder creates a builder that resolves relation ids through source.
// A nil source is allowed for models without relation fields.
func NewBuilder(source RelationSource) *Builder {
	return &Builder{
		source: source,
		cache:  make(map[string][]any),
		checks: make(map[relationField]*validator.MembershipCheck),
	}
}

// Fields derives form fields for the named model fields, in the given order.
// Without names every field of the model is derived in declaration order.
//
// Per field: a positive MaxLength adds a length check, relation fields add a
// membership check over the related ids, and choices add a membership check
// over the choice values. Integer, decimal, boolean and relation fields coerce
// textual cells, as do fields without a length limit whose choices are all
// numbers or booleans. Null or Blank makes the column nullable.
func (b *Builder) Fields(ctx context.Context, model *Model, names ...string) ([]form.Field, error) {
	if len(names) == 0 {
		names = model.FieldNames()
	}

	fields := make([]form.Field, 0, len(names))
	for _, name := range names {
		def, ok := model.Field(name)
		if !ok {
			return nil, errors.Join(ErrUnknownField, fmt.Errorf("model %q has no field %q", model.Name, name))
		}
		field, err := b.field(ctx, def)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (b *Builder) field(ctx context.Context, def FieldDef) (form.Field, error) {
	var checks []validator.Check
	if def.MaxLength > 0 {
		checks = append(checks, validator.NewLengthCheck(def.Name, def.MaxLength))
	}
	if def.Type.IsRelation() {
		check, err := b.relationCheck(ctx, def)
		if err != nil {
			return form.Field{}, err
		}
		checks = append(checks, check)
	}
	if len(def.Choices) > 0 {
		values := make([]any, len(def.Choices))
		for i, c := range def.Choices {
			values[i] = c.Value
		}
		checks = append(checks, validator.NewMembershipCheck(def.Name, values))
	}

	field := form.Field{
		Name:     def.Name,
		Checks:   checks,
		Coerce:   def.Type.Coerces() || (def.MaxLength == 0 && typedChoices(def.Choices)),
		Nullable: def.Null || def.Blank,
	}
	if def.Default != nil {
		field.Default = form.Value(def.Default)
	}
	return field, nil
}

// typedChoices reports whether every choice value is a number or a boolean.
func typedChoices(choices []Choice) bool {
	if len(choices) == 0 {
		return false
	}
	for _, c := range choices {
		switch c.Value.(type) {
		case int, int64, uint64, float64, bool:
		default:
			return false
		}
	}
	return true
}

func (b *Builder) relationCheck(ctx context.Context, def FieldDef) (*validator.MembershipCheck, error) {
	key := relationField{relation: def.Relation, field: def.Name}
	b.mu.RLock()
	check, ok := b.checks[key]
	b.mu.RUnlock()
	if ok {
		return check, nil
	}

	ids, err := b.relation(ctx, def.Relation)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if check, ok := b.checks[key]; ok {
		return check, nil
	}
	check = validator.NewMembershipCheck(def.Name, ids)
	b.checks[key] = check
	return check, nil
}

func (b *Builder) relation(ctx context.Context, name string) ([]any, error) {
	b.mu.RLock()
	ids, ok := b.cache[name]
	b.mu.RUnlock()
	if ok {
		return ids, nil
	}
	if b.source == nil {
		return nil, errors.Join(ErrMissingRelationSource, fmt.Errorf("relation %q", name))
	}

	v, err, _ := b.group.Do(name, func() (any, error) {
		ids, err := b.source.IDs(ctx, name)
		if err != nil {
			return nil, err
		}
		b.mu.Lock()
		b.cache[name] = ids
		b.mu.Unlock()
		return ids, nil
	})
	if err != nil {
		return nil, errors.Join(ErrRelationLookup, fmt.Errorf("relation %q", name), err)
	}
	return v.([]any), nil
}

// Forget drops the cached ids and checks of the given relations, or of all
// relations when none are named.
func (b *Builder) Forget(relations ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(relations) == 0 {
		clear(b.cache)
		clear(b.checks)
		return
	}
	for _, name := range relations {
		delete(b.cache, name)
		for key := range b.checks {
			if key.relation == name {
				delete(b.checks, key)
			}
		}
	}
}
