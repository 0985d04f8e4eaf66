package pg

import "errors"

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrEmptyRelation            = errors.New("relation name is empty")
	ErrFailedToLoadRelation     = errors.New("failed to load relation ids")
	ErrHealthcheckFailed        = errors.New("healthcheck failed")
)
