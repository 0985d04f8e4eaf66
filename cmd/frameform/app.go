package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/frameform/pkg/config"
	"github.com/dmitrymomot/frameform/pkg/logger"
)

var (
	errInvalidBatch  = errors.New("batch is invalid")
	errInvalidConfig = errors.New("invalid configuration")
)

// appConfig is read from the environment and an optional .env file.
type appConfig struct {
	LogLevel    string `env:"FRAMEFORM_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"FRAMEFORM_LOG_FORMAT" envDefault:"text"`
	Concurrency int    `env:"FRAMEFORM_CONCURRENCY" envDefault:"1"`
	PGConnURL   string `env:"PG_CONN_URL"`
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	switch logger.Format(strings.ToLower(cfg.LogFormat)) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return cfg, errors.Join(errInvalidConfig, fmt.Errorf("FRAMEFORM_LOG_FORMAT %q", cfg.LogFormat))
	}
	if cfg.Concurrency < 1 {
		return cfg, errors.Join(errInvalidConfig, fmt.Errorf("FRAMEFORM_CONCURRENCY %d", cfg.Concurrency))
	}
	return cfg, nil
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(strings.ToLower(cfg.LogFormat))),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("service", "frameform"), slog.String("version", version)),
	)
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "frameform",
		Usage:   "Validate tabular batches against model schemas",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load environment variables from these files before reading configuration",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := config.LoadEnv(cmd.StringSlice("env-file")...); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(os.Stdout, os.Stderr),
		},
	}
}
