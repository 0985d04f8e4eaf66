package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool and pgx.Tx used to load ids.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// IDSource loads the primary keys of related tables. Its IDs method matches
// the relation source contract of the schema package.
type IDSource struct {
	db     Querier
	column string
}

// NewIDSource creates a source reading column from relation tables.
// An empty column defaults to "id".
func NewIDSource(db Querier, column string) *IDSource {
	if column == "" {
		column = "id"
	}
	return &IDSource{db: db, column: column}
}

// IDs returns every id stored in relation. A schema-qualified name such as
// "billing.accounts" is quoted part by part. Uuid keys are returned in their
// canonical string form and bytea keys as strings, so they compare equal to
// ids decoded from text input.
func (s *IDSource) IDs(ctx context.Context, relation string) ([]any, error) {
	if strings.TrimSpace(relation) == "" {
		return nil, ErrEmptyRelation
	}

	query := fmt.Sprintf("SELECT %s FROM %s",
		pgx.Identifier{s.column}.Sanitize(),
		pgx.Identifier(strings.Split(relation, ".")).Sanitize(),
	)
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadRelation, fmt.Errorf("relation %q", relation), err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[any])
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadRelation, fmt.Errorf("relation %q", relation), err)
	}
	for i, id := range ids {
		ids[i] = normalizeID(id)
	}
	return ids, nil
}

func normalizeID(id any) any {
	switch v := id.(type) {
	case [16]byte:
		return uuid.UUID(v).String()
	case uuid.UUID:
		return v.String()
	case []byte:
		return string(v)
	}
	return id
}
