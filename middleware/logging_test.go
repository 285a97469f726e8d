package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/response"
	"github.com/zephyrhq/zephyr/core/router"
	"github.com/zephyrhq/zephyr/middleware"
)

// logEntry decodes the single JSON record written during one request.
func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func loggingRouter(mw handler.Middleware[*router.Context]) router.Router[*router.Context] {
	r := router.New[*router.Context]()
	r.Use(mw)
	r.Get("/ping", func(ctx *router.Context) handler.Response {
		return response.String("pong")
	})
	r.Get("/boom", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("downstream exploded")
		}
	})
	return r
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs_request_fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		r := loggingRouter(middleware.LoggingWithLogger[*router.Context](log))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, w.Code)

		entry := logEntry(t, &buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "request", entry["msg"])
		assert.Equal(t, "http", entry["component"])
		assert.Equal(t, http.MethodGet, entry["method"])
		assert.Equal(t, "/ping", entry["path"])
		assert.Equal(t, float64(http.StatusOK), entry["status_code"])
		assert.Equal(t, float64(4), entry["bytes_out"])
		assert.Contains(t, entry, "duration")
	})

	t.Run("handler_error_logged_and_propagated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		r := loggingRouter(middleware.LoggingWithLogger[*router.Context](log))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		// The error still reaches the router's error handler.
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		entry := logEntry(t, &buf)
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, "request failed", entry["msg"])
		assert.Equal(t, "downstream exploded", entry["error"])
	})

	t.Run("slow_request_warns", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		r := loggingRouter(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
			Logger:        log,
			SlowThreshold: time.Nanosecond,
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		entry := logEntry(t, &buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "slow request", entry["msg"])
	})

	t.Run("skip_suppresses_entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		r := loggingRouter(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
			Logger: log,
			Skip: func(ctx handler.Context) bool {
				return ctx.Request().URL.Path == "/ping"
			},
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, buf.Len())
	})

	t.Run("includes_request_id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		r := router.New[*router.Context]()
		r.Use(
			middleware.RequestID[*router.Context](),
			middleware.LoggingWithLogger[*router.Context](log),
		)
		r.Get("/ping", func(ctx *router.Context) handler.Response {
			return response.String("pong")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		entry := logEntry(t, &buf)
		assert.Equal(t, w.Header().Get("X-Request-ID"), entry["request_id"])
	})

	t.Run("custom_component", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		r := loggingRouter(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
			Logger:    log,
			Component: "assets",
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		entry := logEntry(t, &buf)
		assert.Equal(t, "assets", entry["component"])
	})
}
