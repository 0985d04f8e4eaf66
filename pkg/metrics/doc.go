// Package metrics records the outcome of batch validations.
//
// Recorder is the interface consumed by the form package. Nop discards every
// observation and is the default. Prometheus exposes counters and a duration
// histogram registered on a caller-supplied prometheus.Registerer:
//
//	frameform_validations_total{result="valid|invalid"}
//	frameform_rows_validated_total
//	frameform_errors_total{kind="row|column"}
//	frameform_validation_duration_seconds
package metrics
