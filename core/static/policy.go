package static

import (
	"net/http"
	"path"
	"strings"
)

// fallbackMIMEType is served when the extension is unknown. Paired with
// X-Content-Type-Options: nosniff it keeps browsers from guessing.
const fallbackMIMEType = "application/octet-stream"

// DefaultCompressMinSize is the size a file must exceed before compression
// is considered. Bodies at or below 860 bytes are served raw.
const DefaultCompressMinSize = 860

// Compression identifies the content coding applied to a response body.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionDeflate
)

// String returns the Content-Encoding token for the coding, or "" for none.
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionDeflate:
		return "deflate"
	default:
		return ""
	}
}

// ServePolicy is the per-request serving decision: what media type to
// declare, whether to advertise byte ranges, and which compression to apply
// to full-body responses.
type ServePolicy struct {
	ContentType  string
	AcceptRanges bool
	Compression  Compression
}

// Config holds the lookup tables and knobs driving policy resolution. Values
// are treated as read-only once handed to a handler; share one Config across
// requests freely, but do not mutate it while serving.
type Config struct {
	// MIMETypes maps lower-case extensions (".css") to media types.
	MIMETypes map[string]string `yaml:"mime_types"`
	// Compressible marks the extensions eligible for compression.
	Compressible map[string]bool `yaml:"compressible"`
	// Compression is the master switch for compressed static responses.
	Compression bool `yaml:"compression"`
	// CompressMinSize is the strict lower bound on file size for
	// compression; files of exactly this size are served raw.
	CompressMinSize int64 `yaml:"compress_min_size"`
}

// DefaultConfig returns a Config with the built-in tables, compression
// enabled, and the default size threshold. The maps are fresh copies, so
// callers may extend them before first use.
func DefaultConfig() Config {
	return Config{
		MIMETypes:       defaultMIMETypes(),
		Compressible:    defaultCompressible(),
		Compression:     true,
		CompressMinSize: DefaultCompressMinSize,
	}
}

// Resolve computes the serving policy for a file. It is a pure function of
// its inputs: no I/O, no mutation, identical answers for identical calls.
//
// The media type comes from the extension table, falling back to
// application/octet-stream. Compression is granted only when every condition
// holds: the request is a GET, the client accepts gzip or deflate, the
// config enables compression, the file is strictly larger than
// CompressMinSize, and the extension is in the compressible set. When both
// codings are acceptable gzip wins.
func (c Config) Resolve(name string, size int64, r *http.Request) ServePolicy {
	ext := strings.ToLower(path.Ext(name))

	mimeType, ok := c.MIMETypes[ext]
	if !ok || mimeType == "" {
		mimeType = fallbackMIMEType
	}

	policy := ServePolicy{
		ContentType:  mimeType,
		AcceptRanges: true,
	}

	if !c.Compression || r.Method != http.MethodGet {
		return policy
	}
	if size <= c.minCompressSize() {
		return policy
	}
	if !c.Compressible[ext] {
		return policy
	}

	gzipOK, deflateOK := acceptedEncodings(r.Header.Get("Accept-Encoding"))
	switch {
	case gzipOK:
		policy.Compression = CompressionGzip
	case deflateOK:
		policy.Compression = CompressionDeflate
	}

	return policy
}

func (c Config) minCompressSize() int64 {
	if c.CompressMinSize > 0 {
		return c.CompressMinSize
	}
	return DefaultCompressMinSize
}

// acceptedEncodings scans an Accept-Encoding header for the gzip and deflate
// tokens. Tokens are matched whole and case-insensitively against each
// comma-separated element with its parameters stripped, so "xgzip" or
// "gzip2" never count as gzip.
func acceptedEncodings(header string) (gzipOK, deflateOK bool) {
	for header != "" {
		var elem string
		elem, header, _ = strings.Cut(header, ",")

		// Drop quality values and other parameters.
		if i := strings.IndexByte(elem, ';'); i >= 0 {
			elem = elem[:i]
		}
		elem = strings.TrimSpace(elem)

		switch {
		case strings.EqualFold(elem, "gzip"):
			gzipOK = true
		case strings.EqualFold(elem, "deflate"):
			deflateOK = true
		}
	}
	return gzipOK, deflateOK
}
