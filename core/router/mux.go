package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/zephyrhq/zephyr/core/handler"

	"github.com/zephyrhq/zephyr/core/logger"
)

// mux is the private Router implementation.
type mux[C handler.Context] struct {
	tree         *node[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	parent       *mux[C] // set on inline groups
	inline       bool
	registered   bool
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		tree:         &node[C]{},
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // no-op by default
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			// Only the built-in *Context works without a factory;
			// custom context types must provide one.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	var ps routeParams
	n := m.tree.match(splitPath(path), &ps)

	// Mounted subtrees answer with their own routing and error handling.
	if n != nil && n.mount != nil {
		m.serveMount(ww, r, n, path)
		return
	}

	ctx := m.newContext(ww, r, ps.toMap())

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}

			if ww.Written() {
				// Too late for an error response; the log is all we have.
				m.logger.Error("panic after response written",
					slog.Any("value", panicErr.value),
					slog.String("stack", string(panicErr.stack)),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(ww.Status()),
				)
			} else {
				m.errorHandler(ctx, panicErr)
			}
		}
	}()

	if n == nil {
		m.errorHandler(ctx, ErrNotFound)
		return
	}

	h := n.handlers[r.Method]
	if h == nil {
		h = n.handlers[methodAll]
	}
	if h == nil {
		if allowed := n.allowedMethods(); len(allowed) > 0 && !ww.Written() {
			// Advertise what would have worked, per RFC 7231.
			ww.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		m.errorHandler(ctx, ErrMethodNotAllowed)
		return
	}

	if len(m.middlewares) > 0 {
		h = chain(m.middlewares, h)
	}

	resp := h(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, r); err != nil {
		m.errorHandler(ctx, err)
	}
}

// serveMount strips the mount prefix and delegates to the nested handler.
func (m *mux[C]) serveMount(w http.ResponseWriter, r *http.Request, n *node[C], path string) {
	subPath := path
	if n.mountPrefix != "" && strings.HasPrefix(path, n.mountPrefix) {
		subPath = path[len(n.mountPrefix):]
	}
	if subPath == "" {
		subPath = "/"
	} else if subPath[0] != '/' {
		subPath = "/" + subPath
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = subPath
	n.mount.ServeHTTP(w, r2)
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

// Handle registers a handler for all HTTP methods.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle(methodAll, pattern, h)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		name := strings.ToUpper(strings.TrimSpace(method))
		if name == "" {
			panic(fmt.Errorf("%w: %q", ErrInvalidMethod, method))
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		m.handle(name, pattern, h)
	}
}

// Use appends middleware to the router. All middleware must be registered
// before the first route.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.registered {
		panic("zephyr: middlewares must be registered before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates an inline router that applies additional middleware to the
// routes registered through it.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		inline:       true,
		parent:       m,
		tree:         m.tree,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
	}
}

// Group creates an inline router for registering a related set of routes.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Route creates a sub-router, configures it through fn, and mounts it at
// pattern. The sub-router inherits the parent's error handler, context
// factory, and logger.
func (m *mux[C]) Route(pattern string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w at %q", ErrNilSubrouter, pattern))
	}

	sub := newMux[C]()
	sub.errorHandler = m.errorHandler
	sub.newContext = m.newContext
	sub.logger = m.logger

	fn(sub)
	m.Mount(pattern, sub)
	return sub
}

// Mount attaches any http.Handler below pattern. The mounted handler sees
// request paths relative to the mount point.
func (m *mux[C]) Mount(pattern string, sub http.Handler) {
	if sub == nil {
		panic(fmt.Errorf("%w at %q", ErrNilRouter, pattern))
	}
	m.registered = true
	m.tree.insertMount(pattern, sub)
}

// Routes returns the registered route table.
func (m *mux[C]) Routes() []Route {
	return m.tree.routes()
}

// handle registers a handler in the tree, applying inline group middleware
// at registration time.
func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if !m.inline {
		m.registered = true
	}

	h := fn
	if m.inline {
		// Collect middleware from the inline chain outermost-first.
		var mws []handler.Middleware[C]
		for curr := m; curr != nil && curr.inline; curr = curr.parent {
			mws = append(append([]handler.Middleware[C]{}, curr.middlewares...), mws...)
		}
		if len(mws) > 0 {
			h = chain(mws, fn)
		}
		// Routes through an inline group still pin the root mux.
		for curr := m; curr != nil; curr = curr.parent {
			if !curr.inline {
				curr.registered = true
			}
		}
	}

	m.tree.insert(method, pattern, h)
}
