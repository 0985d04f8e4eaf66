package schema

import (
	"context"
	"errors"
	"fmt"
)

// RelationSource loads the primary keys of a related table.
type RelationSource interface {
	IDs(ctx context.Context, relation string) ([]any, error)
}

// StaticRelations is a RelationSource backed by a map from relation name to ids.
type StaticRelations map[string][]any

// IDs returns a copy of the ids stored for relation.
func (s StaticRelations) IDs(_ context.Context, relation string) ([]any, error) {
	ids, ok := s[relation]
	if !ok {
		return nil, errors.Join(ErrUnknownRelation, fmt.Errorf("relation %q", relation))
	}
	return append([]any(nil), ids...), nil
}
