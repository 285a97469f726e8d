// Package router implements a generic HTTP router with typed contexts,
// middleware chaining, route grouping, and mounting of nested handlers.
//
// # Basic Usage
//
//	r := router.New[*router.Context]()
//
//	r.Get("/healthz", func(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	})
//
//	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
//		return response.String("user " + ctx.Param("id"))
//	})
//
//	r.Get("/assets/*", static.Dir[*router.Context]("./public"))
//
//	http.ListenAndServe(":8080", r)
//
// # Patterns
//
// Patterns are segment based. A segment is either a static literal, a {name}
// capture, or the trailing wildcard *. The wildcard must be last and its
// remainder is exposed as Param("*"). Matching prefers static segments over
// captures over the wildcard, with backtracking, so /assets/app.css and
// /assets/{file} and /assets/* can coexist. Repeated and trailing slashes
// are ignored.
//
// # Middleware
//
// Use registers middleware for every route; the first registered runs
// outermost. With and Group scope extra middleware to a subset of routes:
//
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Group(func(r router.Router[*router.Context]) {
//		r.Use(middleware.CORS[*router.Context]())
//		r.Get("/api/status", statusHandler)
//	})
//
// # Error Handling
//
// Handlers report failures by returning errors from their Response. The
// router funnels those, unmatched routes (ErrNotFound), method mismatches
// (ErrMethodNotAllowed, with an Allow header), and recovered panics into the
// configured error handler. The default renders plain text; wire
// response.JSONErrorHandler for JSON APIs.
//
// # Custom Contexts
//
// The router is generic over handler.Context. The built-in *Context works
// out of the box; custom types need a factory:
//
//	type AppContext struct{ *router.Context /* plus app fields */ }
//
//	r := router.New[*AppContext](
//		router.WithContextFactory(newAppContext),
//	)
package router
