// Package response provides composable HTTP response builders returning
// handler.Response functions, plus structured error types and default error
// handlers.
//
// # Response Builders
//
//	r.Get("/health", func(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	})
//
//	r.Get("/robots", func(ctx *router.Context) handler.Response {
//		return response.String("User-agent: *\nDisallow:")
//	})
//
// Builders exist for plain text, HTML, raw bytes, JSON, redirects, and empty
// statuses. Each writes headers, status, and body in one step and reports
// write failures to the caller.
//
// # Structured Errors
//
// HTTPError carries a status code, a stable machine-readable code, and an
// optional details map. Handlers return it like any error:
//
//	return response.Error(response.ErrNotFound.WithMessage("no such asset"))
//
// # Error Handlers
//
// ErrorHandler (plain text) and JSONErrorHandler normalize arbitrary errors
// into HTTPError values before rendering, so a router wired with
//
//	router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//
// produces consistent error payloads for framework and application errors
// alike.
package response
