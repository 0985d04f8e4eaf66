package pg

import "time"

type Config struct {
	ConnectionString  string        `env:"PG_CONN_URL,required"`                   // ConnectionString is the connection string to the database.
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"4"`       // MaxOpenConns is the maximum number of open connections to the database.
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"1"`       // MaxIdleConns is the minimum number of connections kept open.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // MaxConnIdleTime is the maximum amount of time a connection may be idle to be reused.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // MaxConnLifetime is the maximum amount of time a connection may be reused.
	RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`       // RetryAttempts is the number of attempts to connect to the database.
	RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"2s"`      // RetryInterval is the base interval between attempts.
	IDColumn          string        `env:"PG_RELATION_ID_COLUMN" envDefault:"id"`  // IDColumn is the primary key column read from relation tables.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // HealthCheckPeriod is the period between pool health checks.
}
