package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frameform/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("json formatter overrides text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")

		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")

		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("batch")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("batch_id", ctxKey),
			logger.WithContextExtractors(nil),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "b-1")
		log.With("component", "form").InfoContext(ctx, "context msg")

		entry := decode(t, buf)
		assert.Equal(t, "b-1", entry["batch_id"])
		assert.Equal(t, "form", entry["component"])
	})

	t.Run("level by name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Equal(t, "shown", decode(t, buf)["msg"])
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
		log.Info("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("development preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment("frameform"), logger.WithOutput(buf))
		log.Debug("dbg")

		assert.Contains(t, buf.String(), "service=frameform")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("production preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction("frameform"), logger.WithOutput(buf))
		log.Debug("dbg")
		assert.Empty(t, buf.String())

		log.Info("info")
		assert.Equal(t, "frameform", decode(t, buf)["service"])
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")

	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestDiscard(t *testing.T) {
	assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError))
}
