// Package middleware provides typed HTTP middleware for the router: request
// ID tagging, structured access logging, and CORS.
//
// Middleware composes through the router, first registered runs outermost:
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//	)
//
// Each middleware has a WithConfig variant for non-default behavior and a
// Skip hook for exempting routes:
//
//	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
//		Logger: log,
//		Skip: func(ctx handler.Context) bool {
//			return ctx.Request().URL.Path == "/healthz"
//		},
//	}))
package middleware
