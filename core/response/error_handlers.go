package response

import (
	"errors"
	"net/http"

	"github.com/zephyrhq/zephyr/core/handler"
)

// statusCode lets foreign errors carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError normalizes any error into an HTTPError. HTTPError values
// pass through unchanged; errors exposing StatusCode() map to the predefined
// error for that status; everything else becomes a 500 with the original
// error recorded as the cause.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// ErrorHandler renders errors as plain text with the resolved status code.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders errors as JSON objects with the resolved status
// code, exposing the machine-readable code and optional details.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
