package handler

import "net/http"

// Response renders an HTTP response: it writes headers, the status code,
// and the body. Errors returned here flow into the router's error handler,
// which decides whether anything can still be written to the client.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc processes a request through a typed context and returns the
// Response that will render the result. Keeping the two phases separate lets
// middleware wrap either the processing or the rendering side.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors raised by handlers, middleware, or response
// rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler to add behavior before or after it runs.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
