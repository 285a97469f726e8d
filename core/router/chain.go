package router

import "github.com/zephyrhq/zephyr/core/handler"

// chain folds a middleware stack around an endpoint. Wrapping happens in
// reverse so the first middleware in the slice runs outermost.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
