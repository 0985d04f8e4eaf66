package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result summarizes one completed validation.
type Result struct {
	Valid        bool
	Rows         int
	RowErrors    int
	ColumnErrors int
	GlobalErrors int
	Duration     time.Duration
}

// Recorder observes completed validations.
type Recorder interface {
	ObserveValidation(r Result)
}

// Nop is a Recorder that does nothing.
type Nop struct{}

func (Nop) ObserveValidation(Result) {}

// Prometheus is a Recorder backed by Prometheus collectors.
type Prometheus struct {
	validations *prometheus.CounterVec
	rows        prometheus.Counter
	errors      *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewPrometheus creates the collectors and registers them on reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frameform_validations_total",
				Help: "Total number of completed batch validations by result",
			},
			[]string{"result"},
		),
		rows: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "frameform_rows_validated_total",
				Help: "Total number of rows passed through validation",
			},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frameform_errors_total",
				Help: "Total number of recorded validation errors by kind (row, column, global)",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "frameform_validation_duration_seconds",
				Help:    "Duration of a batch validation in seconds",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
		),
	}

	for _, c := range []prometheus.Collector{p.validations, p.rows, p.errors, p.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Join(ErrRegisterCollector, err)
		}
	}
	return p, nil
}

func (p *Prometheus) ObserveValidation(r Result) {
	result := "invalid"
	if r.Valid {
		result = "valid"
	}
	p.validations.WithLabelValues(result).Inc()
	p.rows.Add(float64(r.Rows))
	p.errors.WithLabelValues("row").Add(float64(r.RowErrors))
	p.errors.WithLabelValues("column").Add(float64(r.ColumnErrors))
	p.errors.WithLabelValues("global").Add(float64(r.GlobalErrors))
	p.duration.Observe(r.Duration.Seconds())
}
