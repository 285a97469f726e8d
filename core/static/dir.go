package static

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/response"
)

// indexFile is served when a request resolves to a directory.
const indexFile = "index.html"

// Dir creates a handler that serves files from a directory tree with range
// and compression support. Requests resolving to a directory serve its
// index.html; directory listings are never generated. Panics at startup if
// root does not exist or is not a directory.
//
// When registered on a wildcard route the remainder parameter selects the
// file; otherwise the URL path is used, minus any configured strip prefix:
//
//	r.Get("/assets/*", static.Dir[*router.Context]("./public"))
func Dir[C handler.Context](root string, opts ...Option) handler.HandlerFunc[C] {
	o := newOptions(opts)
	cleanRoot := filepath.Clean(root)

	info, err := os.Stat(cleanRoot)
	if err != nil {
		if os.IsNotExist(err) {
			panic("static.Dir: directory does not exist: " + cleanRoot)
		}
		panic("static.Dir: error accessing directory: " + err.Error())
	}
	if !info.IsDir() {
		panic("static.Dir: path is not a directory: " + cleanRoot)
	}

	return func(ctx C) handler.Response {
		name := requestedFile(ctx, o.stripPrefix)

		return func(w http.ResponseWriter, r *http.Request) error {
			full := filepath.Join(cleanRoot, filepath.FromSlash(name))

			f, err := os.Open(full)
			if err != nil {
				return o.openError(w, r, err)
			}

			fi, err := f.Stat()
			if err != nil {
				_ = f.Close()
				return response.ErrInternalServerError.WithError(err)
			}

			if fi.IsDir() {
				_ = f.Close()
				full = filepath.Join(full, indexFile)
				if f, err = os.Open(full); err != nil {
					return o.openError(w, r, err)
				}
				if fi, err = f.Stat(); err != nil {
					_ = f.Close()
					return response.ErrInternalServerError.WithError(err)
				}
			}

			policy := o.cfg.Resolve(full, fi.Size(), r)
			return stream(w, r, f, fi.Size(), policy, o.limiter)
		}
	}
}

// requestedFile resolves the relative file path for a request. The wildcard
// route parameter wins when present; otherwise the URL path is used. The
// result is cleaned against traversal, so "../" can never escape the root.
func requestedFile(ctx handler.Context, stripPrefix string) string {
	name := ctx.Param("*")
	if name == "" {
		name = ctx.Request().URL.Path
		if stripPrefix != "" {
			name = strings.TrimPrefix(name, stripPrefix)
		}
	}

	// Cleaning an absolute path resolves every ".." before it can climb
	// above the root.
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}
