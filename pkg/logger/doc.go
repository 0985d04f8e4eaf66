// Package logger builds slog loggers for frameform components and keeps
// attribute naming consistent across them.
//
// New creates a *slog.Logger configured by functional options: output format
// (JSON or text), level, static attributes and ContextExtractor callbacks that
// add attributes taken from the record context. Attribute helpers such as
// BatchID, Row, Field and Error live in attr.go.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("frameform"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.Info("batch validated",
//	    logger.BatchID(id),
//	    logger.Count("rows", n),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
