package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls logger construction. Fields map to environment variables so
// deployments can switch level and format without code changes.
type Config struct {
	// Level is the minimum record level: debug, info, warn, or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format selects the output encoding: text or json.
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	// AddSource includes the file:line of the logging call in each record.
	AddSource bool `env:"LOG_SOURCE" envDefault:"false"`
}

// New builds a slog.Logger writing to w according to cfg.
// Unknown level or format values fall back to info and text.
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
