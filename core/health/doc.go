// Package health provides liveness and readiness handlers for orchestrators
// and load balancers.
//
//	r.Get("/healthz", health.Liveness[*router.Context])
//	r.Get("/readyz", health.Readiness[*router.Context](log,
//		func(ctx context.Context) error { return db.PingContext(ctx) },
//	))
//
// Liveness only proves the process runs; Readiness walks the given
// dependency checks and turns the first failure into a 503.
package health
