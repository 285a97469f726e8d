package static

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/response"
)

// File creates a handler that serves a single file with range and
// compression support. Panics at startup if the file does not exist or is a
// directory, so broken deployments fail immediately.
func File[C handler.Context](filePath string, opts ...Option) handler.HandlerFunc[C] {
	o := newOptions(opts)
	cleanPath := filepath.Clean(filePath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			panic("static.File: file does not exist: " + cleanPath)
		}
		panic("static.File: error accessing file: " + err.Error())
	}
	if info.IsDir() {
		panic("static.File: path is a directory, not a file: " + cleanPath)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			f, err := os.Open(cleanPath)
			if err != nil {
				return o.openError(w, r, err)
			}

			fi, err := f.Stat()
			if err != nil {
				_ = f.Close()
				return response.ErrInternalServerError.WithError(err)
			}

			policy := o.cfg.Resolve(cleanPath, fi.Size(), r)
			return stream(w, r, f, fi.Size(), policy, o.limiter)
		}
	}
}

// openError translates filesystem failures into the handler's not-found
// response or a structured HTTP error.
func (o *options) openError(w http.ResponseWriter, r *http.Request, err error) error {
	switch {
	case os.IsNotExist(err):
		if o.notFound != nil {
			return o.notFound(w, r)
		}
		return response.ErrNotFound
	case os.IsPermission(err):
		return response.ErrForbidden
	default:
		return response.ErrInternalServerError.WithError(err)
	}
}
