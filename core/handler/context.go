package handler

import (
	"context"
	"net/http"
)

// Context is the request context contract shared by handlers and middleware.
// It extends context.Context with access to the HTTP exchange, route
// parameters, and request-scoped value storage. The router provides a default
// implementation; applications with richer needs supply their own type and a
// matching context factory.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
