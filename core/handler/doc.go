// Package handler defines the request processing contract used across the
// framework: typed handlers, composable middleware, and a context interface
// that carries the HTTP exchange.
//
// # Core Types
//
// Four function types cooperate to process a request:
//
//	// Renders the final response
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Processes a request through a typed context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Renders errors from handlers or rendering
//	type ErrorHandler[C Context] func(ctx C, err error)
//
//	// Wraps handlers with cross-cutting behavior
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// A handler runs in two phases. First it processes the request through the
// context and returns a Response; then the router invokes that Response to
// write the result. Middleware can hook either phase:
//
//	func Timing[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				start := time.Now()
//				resp := next(ctx) // processing phase
//				return func(w http.ResponseWriter, r *http.Request) error {
//					w.Header().Set("X-Elapsed", time.Since(start).String())
//					return resp(w, r) // rendering phase
//				}
//			}
//		}
//	}
//
// # Context
//
// Context extends context.Context with HTTP-specific accessors:
//
//	type Context interface {
//		context.Context
//		Request() *http.Request
//		ResponseWriter() http.ResponseWriter
//		Param(key string) string
//		SetValue(key, val any)
//	}
//
// Handlers are generic over the context type, so applications can expose
// their own context with session data, authenticated users, or anything else
// request-scoped, without type assertions in handler code:
//
//	func getAsset(ctx *router.Context) handler.Response {
//		name := ctx.Param("*")
//		return response.String("asset: " + name)
//	}
package handler
