package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/zephyrhq/zephyr/core/handler"
)

// CORSConfig configures cross-origin resource sharing.
type CORSConfig struct {
	// Skip bypasses CORS handling for matching requests.
	Skip func(ctx handler.Context) bool
	// AllowOrigins lists permitted origins; "*" permits all. Defaults to
	// the wildcard.
	AllowOrigins []string
	// AllowMethods lists methods granted to cross-origin callers. Defaults
	// to GET, HEAD, POST, PUT, PATCH, DELETE.
	AllowMethods []string
	// AllowHeaders lists request headers granted in preflight. Defaults to
	// Accept, Content-Type, and Authorization.
	AllowHeaders []string
	// ExposeHeaders lists response headers readable by the caller.
	ExposeHeaders []string
	// AllowCredentials permits cookies and authorization headers. Ignored
	// with the wildcard origin; the combination is forbidden by browsers.
	AllowCredentials bool
	// MaxAge caches preflight answers for this many seconds.
	MaxAge int
	// AllowOriginFunc validates origins dynamically and takes precedence
	// over AllowOrigins. It returns the origin to echo and whether the
	// origin is allowed.
	AllowOriginFunc func(origin string) (string, bool)
}

// CORS permits all origins with common methods and headers. Use
// CORSWithConfig with explicit origins for anything public.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig handles preflight OPTIONS requests and decorates responses
// with the configured CORS headers.
//
// Preflight requests only reach the middleware when the route accepts
// OPTIONS; register such routes with Handle or include http.MethodOptions in
// a Method registration.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Accept", "Content-Type", "Authorization"}
	}

	wildcard := slices.Contains(cfg.AllowOrigins, "*")
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")

	allowedOrigin := func(origin string) (string, bool) {
		if cfg.AllowOriginFunc != nil {
			return cfg.AllowOriginFunc(origin)
		}
		if wildcard {
			if cfg.AllowCredentials {
				// Browsers reject credentials with a literal wildcard, so
				// echo the caller's origin instead.
				return origin, true
			}
			return "*", true
		}
		if slices.Contains(cfg.AllowOrigins, origin) {
			return origin, true
		}
		return "", false
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			r := ctx.Request()
			origin := r.Header.Get("Origin")
			if origin == "" {
				return next(ctx)
			}

			echoOrigin, ok := allowedOrigin(origin)

			preflight := r.Method == http.MethodOptions &&
				r.Header.Get("Access-Control-Request-Method") != ""
			if preflight {
				return func(w http.ResponseWriter, r *http.Request) error {
					h := w.Header()
					h.Add("Vary", "Origin")
					h.Add("Vary", "Access-Control-Request-Method")
					h.Add("Vary", "Access-Control-Request-Headers")

					if ok {
						h.Set("Access-Control-Allow-Origin", echoOrigin)
						h.Set("Access-Control-Allow-Methods", allowMethods)
						h.Set("Access-Control-Allow-Headers", allowHeaders)
						if cfg.AllowCredentials && echoOrigin != "*" {
							h.Set("Access-Control-Allow-Credentials", "true")
						}
						if cfg.MaxAge > 0 {
							h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
						}
					}

					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				h := w.Header()
				h.Add("Vary", "Origin")
				if ok {
					h.Set("Access-Control-Allow-Origin", echoOrigin)
					if cfg.AllowCredentials && echoOrigin != "*" {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					if exposeHeaders != "" {
						h.Set("Access-Control-Expose-Headers", exposeHeaders)
					}
				}
				return response(w, r)
			}
		}
	}
}
