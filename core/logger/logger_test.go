package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrhq/zephyr/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json_format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Level: "info", Format: "json"})
		log.Info("hello", logger.Component("test"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "test", entry["component"])
	})

	t.Run("text_format_by_default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Level: "info", Format: "not-a-format"})
		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level_filters_records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Level: "warn", Format: "json"})

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("level_is_case_insensitive", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Level: "DEBUG", Format: "json"})

		log.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("unknown_level_defaults_to_info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Level: "loudest", Format: "json"})

		log.Debug("dropped")
		assert.Zero(t, buf.Len())

		log.Info("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error_attr_renders_message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Format: "json"})
		log.Info("failed", logger.Error(errors.New("disk full")))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "disk full", entry["error"])
	})

	t.Run("nil_error_attr_is_dropped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(&buf, logger.Config{Format: "json"})
		log.Info("ok", logger.Error(nil), logger.RequestID(""))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.NotContains(t, entry, "error")
		assert.NotContains(t, entry, "request_id")
	})
}
