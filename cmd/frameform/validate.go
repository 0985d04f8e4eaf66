package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/frameform/pkg/config"
	"github.com/dmitrymomot/frameform/pkg/dataset"
	"github.com/dmitrymomot/frameform/pkg/form"
	"github.com/dmitrymomot/frameform/pkg/logger"
	"github.com/dmitrymomot/frameform/pkg/metrics"
	"github.com/dmitrymomot/frameform/pkg/pg"
	"github.com/dmitrymomot/frameform/pkg/rows"
	"github.com/dmitrymomot/frameform/pkg/schema"
)

// report is the JSON document written by the validate command.
type report struct {
	Batch   string                      `json:"batch"`
	Valid   bool                        `json:"valid"`
	Rows    int                         `json:"rows"`
	Errors  map[int]map[string][]string `json:"errors"`
	Global  map[string][]string         `json:"global,omitempty"`
	Cleaned []dataset.Row               `json:"cleaned"`
}

func validateCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a batch of rows against a model schema",
		Description: `Derive column checks from a YAML model, clean every row and report
per-row, per-field errors as JSON.

Foreign key ids come from the "relations" section of the model, or from
PostgreSQL when PG_CONN_URL is set.

Examples:
  frameform validate --schema invoice.yaml --data invoices.csv
  frameform validate -s invoice.yaml -d invoices.json --fields number,status --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Path to the YAML model file",
			},
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "Path to the rows file (.json, .yaml, .yml or .csv)",
			},
			&cli.StringSliceFlag{
				Name:    "fields",
				Aliases: []string{"f"},
				Usage:   "Model fields to validate, in order (default: all)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Rows cleaned and columns checked in parallel (overrides FRAMEFORM_CONCURRENCY)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the report to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics of the run to this file in text format",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if the batch is invalid",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if n := cmd.Int("concurrency"); n > 0 {
				cfg.Concurrency = int(n)
			}
			log := newLogger(cfg, stderr)

			out := stdout
			if path := cmd.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create output file %q: %w", path, err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						log.Warn("failed to close output file", logger.Error(err))
					}
				}()
				out = f
			}

			return runValidate(ctx, log, cfg, validateParams{
				schemaPath:  cmd.String("schema"),
				dataPath:    cmd.String("data"),
				fields:      splitFields(cmd.StringSlice("fields")),
				metricsPath: cmd.String("metrics-file"),
				failOnError: cmd.Bool("fail-on-error"),
			}, out)
		},
	}
}

type validateParams struct {
	schemaPath  string
	dataPath    string
	fields      []string
	metricsPath string
	failOnError bool
}

func runValidate(ctx context.Context, log *slog.Logger, cfg appConfig, p validateParams, out io.Writer) error {
	log = log.With(logger.Component("cli"))

	log.Info("loading schema", slog.String("path", p.schemaPath))
	model, err := schema.LoadYAML(p.schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema from %q: %w", p.schemaPath, err)
	}

	log.Info("loading rows", slog.String("path", p.dataPath))
	data, err := rows.Load(p.dataPath)
	if err != nil {
		return fmt.Errorf("failed to load rows from %q: %w", p.dataPath, err)
	}

	source, closeSource, err := relationSource(ctx, log, cfg, model)
	if err != nil {
		return err
	}
	defer closeSource()

	fields, err := schema.NewBuilder(source).Fields(ctx, model, p.fields...)
	if err != nil {
		return fmt.Errorf("failed to derive fields: %w", err)
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheus(reg)
	if err != nil {
		return err
	}

	f, err := form.New(fields, data,
		form.WithLogger(log),
		form.WithRecorder(recorder),
		form.WithConcurrency(cfg.Concurrency),
	)
	if err != nil {
		return fmt.Errorf("failed to build form: %w", err)
	}

	valid := f.IsValid()
	if err := writeReport(out, f, valid, len(data)); err != nil {
		return err
	}

	if p.metricsPath != "" {
		if err := prometheus.WriteToTextfile(p.metricsPath, reg); err != nil {
			return fmt.Errorf("failed to write metrics to %q: %w", p.metricsPath, err)
		}
	}

	if p.failOnError && !valid {
		return errors.Join(errInvalidBatch, fmt.Errorf("%d error(s)", f.Errors().Count()))
	}
	return nil
}

// relationSource returns the Postgres id source when PG_CONN_URL is set and
// the model's inline relations otherwise.
func relationSource(ctx context.Context, log *slog.Logger, cfg appConfig, model *schema.Model) (schema.RelationSource, func(), error) {
	if cfg.PGConnURL == "" {
		return model.Relations, func() {}, nil
	}

	var pgCfg pg.Config
	if err := config.Load(&pgCfg); err != nil {
		return nil, nil, err
	}
	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.Healthcheck(pool)(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	log.Info("loading relations from postgres")
	return pg.NewIDSource(pool, pgCfg.IDColumn), pool.Close, nil
}

func writeReport(w io.Writer, f *form.Form, valid bool, n int) error {
	r := report{
		Batch:   f.ID().String(),
		Valid:   valid,
		Rows:    n,
		Errors:  make(map[int]map[string][]string, len(f.Errors().Rows)),
		Cleaned: f.CleanedData(),
	}
	for idx, fields := range f.Errors().Rows {
		if len(fields) == 0 {
			continue
		}
		r.Errors[idx] = make(map[string][]string, len(fields))
		for name := range fields {
			r.Errors[idx][name] = fields.Messages(name)
		}
	}
	if len(f.Errors().Global) > 0 {
		r.Global = make(map[string][]string, len(f.Errors().Global))
		for name := range f.Errors().Global {
			r.Global[name] = f.Errors().Global.Messages(name)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// splitFields accepts both repeated flags and comma separated lists.
func splitFields(values []string) []string {
	var out []string
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
