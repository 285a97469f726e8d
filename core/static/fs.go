package static

import (
	"errors"
	"io/fs"
	"net/http"
	"path"

	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/response"
)

// FS creates a handler that serves files from any fs.FS, typically an
// embed.FS, with range and compression support. Use WithSubFS to serve a
// subtree of the filesystem. Panics at startup if the sub directory cannot
// be opened.
//
//	//go:embed dist
//	var dist embed.FS
//
//	r.Get("/*", static.FS[*router.Context](dist, static.WithSubFS("dist")))
func FS[C handler.Context](fsys fs.FS, opts ...Option) handler.HandlerFunc[C] {
	o := newOptions(opts)

	if o.subDir != "" {
		sub, err := fs.Sub(fsys, o.subDir)
		if err != nil {
			panic("static.FS: invalid sub directory: " + err.Error())
		}
		fsys = sub
	}

	return func(ctx C) handler.Response {
		name := requestedFile(ctx, o.stripPrefix)
		if name == "" {
			name = "."
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			if !fs.ValidPath(name) {
				return o.fsError(w, r, fs.ErrNotExist)
			}

			f, err := fsys.Open(name)
			if err != nil {
				return o.fsError(w, r, err)
			}

			fi, err := f.Stat()
			if err != nil {
				_ = f.Close()
				return response.ErrInternalServerError.WithError(err)
			}

			if fi.IsDir() {
				_ = f.Close()
				name = path.Join(name, indexFile)
				if f, err = fsys.Open(name); err != nil {
					return o.fsError(w, r, err)
				}
				if fi, err = f.Stat(); err != nil {
					_ = f.Close()
					return response.ErrInternalServerError.WithError(err)
				}
			}

			policy := o.cfg.Resolve(name, fi.Size(), r)
			return stream(w, r, f, fi.Size(), policy, o.limiter)
		}
	}
}

// fsError mirrors openError for fs.FS failures.
func (o *options) fsError(w http.ResponseWriter, r *http.Request, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if o.notFound != nil {
			return o.notFound(w, r)
		}
		return response.ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return response.ErrForbidden
	default:
		return response.ErrInternalServerError.WithError(err)
	}
}
