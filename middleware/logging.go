package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/logger"
)

// DefaultSlowThreshold marks requests worth a warning instead of the usual
// info entry.
const DefaultSlowThreshold = 5 * time.Second

// LoggingConfig configures the access log middleware.
type LoggingConfig struct {
	// Skip bypasses logging for matching requests, health checks being the
	// usual case.
	Skip func(ctx handler.Context) bool
	// Logger receives the entries. Defaults to slog.Default().
	Logger *slog.Logger
	// Component tags every entry. Defaults to "http".
	Component string
	// SlowThreshold promotes entries for slow requests to warning level.
	SlowThreshold time.Duration
}

// Logging writes one structured entry per request: method, path, status,
// bytes written, duration, and the request ID when present.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger is Logging with a specific logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig is Logging with custom configuration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = DefaultSlowThreshold
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				lw := &loggingWriter{ResponseWriter: w}
				err := response(lw, r)
				elapsed := time.Since(start)

				attrs := []any{
					logger.Component(cfg.Component),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(lw.status),
					logger.BytesOut(lw.bytes),
					logger.Duration(elapsed),
				}
				if id, ok := GetRequestID(ctx); ok {
					attrs = append(attrs, logger.RequestID(id))
				}

				switch {
				case err != nil:
					attrs = append(attrs, logger.Error(err))
					cfg.Logger.ErrorContext(ctx, "request failed", attrs...)
				case elapsed >= cfg.SlowThreshold:
					cfg.Logger.WarnContext(ctx, "slow request", attrs...)
				default:
					cfg.Logger.InfoContext(ctx, "request", attrs...)
				}

				return err
			}
		}
	}
}

// loggingWriter records the status and payload size flowing through it.
type loggingWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *loggingWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *loggingWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

func (w *loggingWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
