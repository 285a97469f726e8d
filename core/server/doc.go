// Package server wraps http.Server with graceful shutdown, environment
// driven configuration, and TLS helpers.
//
// # Basic Usage
//
// Run a server until the context ends:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := server.Run(ctx, ":8080", handler); err != nil {
//		log.Fatal(err)
//	}
//
// # Options
//
// Tune timeouts and logging at construction:
//
//	srv := server.New(":8080",
//		server.WithWriteTimeout(5*time.Minute),
//		server.WithShutdownTimeout(60*time.Second),
//		server.WithLogger(log),
//	)
//
// # Coordinated Lifecycle
//
// Run integrates with errgroup so the server shuts down together with the
// rest of the application:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	if err := g.Wait(); err != nil {
//		log.Fatal(err)
//	}
//
// # Environment Configuration
//
// Config loads from SERVER_* variables via core/config:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg)
//
// Setting SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE enables HTTPS with
// the package's default TLS settings.
package server
