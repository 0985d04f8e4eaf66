package schema

import "errors"

var (
	ErrParseSchema           = errors.New("failed to parse schema")
	ErrReadSchema            = errors.New("failed to read schema file")
	ErrUnknownField          = errors.New("unknown field")
	ErrUnknownFieldType      = errors.New("unknown field type")
	ErrMissingRelation       = errors.New("relation field has no related table")
	ErrMissingRelationSource = errors.New("no relation source configured")
	ErrUnknownRelation       = errors.New("unknown relation")
	ErrRelationLookup        = errors.New("failed to load relation ids")
)
