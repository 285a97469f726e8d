package router

import (
	"net/http"

	"github.com/zephyrhq/zephyr/core/handler"
)

// Router routes HTTP requests to typed handlers. It supports middleware
// chaining, route grouping, and mounting of plain http.Handler subtrees.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// HTTP method handlers
	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])

	// Generic handlers
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Middleware
	Use(middlewares ...handler.Middleware[C])
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Grouping and mounting
	Group(fn func(r Router[C])) Router[C]
	Route(pattern string, fn func(r Router[C])) Router[C]
	Mount(pattern string, sub http.Handler)
}

// Routes exposes the registered route table for debugging and tests.
type Routes interface {
	Routes() []Route
}

// Route describes one registered route.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router for the given context type.
//
// Patterns consist of static segments, {name} captures, and an optional
// trailing /* wildcard whose remainder is available as Param("*"). Repeated
// and trailing slashes are insignificant.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
