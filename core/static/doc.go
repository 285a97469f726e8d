// Package static serves files over HTTP with byte-range support and
// on-the-fly compression negotiation.
//
// # Features
//
//   - Single file, directory tree, and fs.FS (embed.FS) serving
//   - Byte-range requests with 206 Partial Content responses
//   - gzip and deflate compression negotiated per request
//   - Extension-driven MIME resolution with a YAML-configurable table
//   - Path sanitization against directory traversal
//   - No directory listings; directories serve their index.html
//   - Optional shared bandwidth throttling
//
// # Handlers
//
// All constructors return handler.HandlerFunc[C] for use with the router:
//
//	r.Get("/favicon.ico", static.File[*router.Context]("./public/favicon.ico"))
//	r.Get("/assets/*", static.Dir[*router.Context]("./public"))
//	r.Get("/*", static.FS[*router.Context](embedded, static.WithSubFS("dist")))
//
// Handlers panic at construction when pointed at paths that do not exist,
// so misconfigured deployments fail at startup rather than at first request.
//
// # Serving Policy
//
// Each request is resolved to a ServePolicy: the declared Content-Type,
// whether ranges are advertised, and which compression (if any) applies.
// Compression requires a GET request, a matching Accept-Encoding token, the
// compression switch on, a file strictly larger than the threshold (860
// bytes by default), and a compressible extension; gzip is preferred over
// deflate. The tables live in a Config value passed to the handler, never
// in package globals:
//
//	cfg, err := static.LoadConfig("static.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	r.Get("/assets/*", static.Dir[*router.Context]("./public",
//		static.WithConfig(cfg),
//		static.WithThrottle(1<<20), // 1 MiB/s across all requests
//	))
//
// # Range Requests
//
// A GET carrying a Range header takes the partial path: the first
// "bytes=start-end" span is honored with a 206 response, an exact
// Content-Length, and a Content-Range header. An omitted or zero end means
// end of file. Ranges that name fewer than two bytes or reach past the end
// are answered with the complete file and status 200; this server never
// emits 416. Range responses are never compressed.
//
// # Response Invariants
//
// Every response carries Content-Type, Accept-Ranges: bytes, and
// X-Content-Type-Options: nosniff. Compressed bodies declare
// Content-Encoding and omit Content-Length; raw bodies declare the exact
// Content-Length. Only statuses 200 and 206 are produced by the serving
// pipeline itself.
package static
