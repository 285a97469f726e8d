package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the built-in handler.Context implementation. It delegates
// context.Context behavior to the request's context, so deadlines and
// cancellation from the HTTP server apply transparently.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{w: w, r: r, params: params}
}

// Deadline reports the request context's deadline.
func (c *Context) Deadline() (time.Time, bool) {
	return c.r.Context().Deadline()
}

// Done returns the request context's cancellation channel.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err reports why the request context was canceled, if it was.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value stored in the request context for key.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the HTTP request being served.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer for this request.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the captured path parameter for key, or "" when absent.
// The trailing wildcard remainder is available under "*".
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// SetValue stores a request-scoped value, visible to Value and to any code
// reading the request's context downstream.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
