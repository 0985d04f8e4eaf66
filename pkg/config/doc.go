// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs. Each configuration
// type is parsed once and cached for the lifetime of the process; Reset
// clears the cache, which is handy in tests.
//
// # Usage
//
//	type Config struct {
//	    LogLevel    string `env:"FRAMEFORM_LOG_LEVEL" envDefault:"info"`
//	    Concurrency int    `env:"FRAMEFORM_CONCURRENCY" envDefault:"1"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config
