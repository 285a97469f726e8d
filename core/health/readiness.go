package health

import (
	"context"
	"log/slog"

	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/logger"
	"github.com/zephyrhq/zephyr/core/response"
)

// Check verifies one dependency. Checks receive the request context and
// should honor its deadline.
type Check func(context.Context) error

// Readiness verifies every dependency before answering. All checks passing
// yields 200 with "READY"; the first failure yields 503 and a log entry.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
