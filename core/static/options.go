package static

import (
	"golang.org/x/time/rate"

	"github.com/zephyrhq/zephyr/core/handler"
)

// options holds the shared configuration of the File, Dir, and FS handlers.
type options struct {
	cfg         Config
	stripPrefix string
	notFound    handler.Response
	limiter     *rate.Limiter
	subDir      string
}

// Option customizes a static handler.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithConfig replaces the handler's serving config entirely. Combine with
// LoadConfig to drive MIME tables and compression from a YAML file.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithMIMEType adds or overrides a single extension mapping.
func WithMIMEType(ext, mimeType string) Option {
	return func(o *options) {
		o.cfg.MIMETypes[normalizeExt(ext)] = mimeType
	}
}

// WithCompression toggles compressed responses for eligible files.
func WithCompression(enabled bool) Option {
	return func(o *options) {
		o.cfg.Compression = enabled
	}
}

// WithCompressMinSize sets the strict size threshold above which eligible
// files are compressed.
func WithCompressMinSize(n int64) Option {
	return func(o *options) {
		o.cfg.CompressMinSize = n
	}
}

// WithCompressible replaces the set of compressible extensions.
func WithCompressible(exts ...string) Option {
	return func(o *options) {
		set := make(map[string]bool, len(exts))
		for _, ext := range exts {
			set[normalizeExt(ext)] = true
		}
		o.cfg.Compressible = set
	}
}

// WithStripPrefix removes prefix from the request path before resolving the
// file. Useful when the handler is registered under a route prefix and the
// wildcard parameter is not in play.
func WithStripPrefix(prefix string) Option {
	return func(o *options) {
		o.stripPrefix = prefix
	}
}

// WithNotFound overrides the response rendered for missing files. The
// default raises a 404 through the router's error handler.
func WithNotFound(resp handler.Response) Option {
	return func(o *options) {
		o.notFound = resp
	}
}

// WithThrottle caps streaming bandwidth at bytesPerSecond across all
// requests served by this handler. Zero or negative disables throttling.
func WithThrottle(bytesPerSecond int) Option {
	return func(o *options) {
		if bytesPerSecond > 0 {
			o.limiter = rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond)
		}
	}
}

// WithSubFS re-roots an FS handler at dir inside the filesystem. Only FS
// uses this option.
func WithSubFS(dir string) Option {
	return func(o *options) {
		o.subDir = dir
	}
}
