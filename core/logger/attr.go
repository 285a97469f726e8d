package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers follow the empty Attr pattern: zero inputs produce an
// empty slog.Attr, which handlers drop silently. Call sites never need nil
// checks around logger.Error(err) or logger.RequestID(id).

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Error attaches a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration records how long an operation took.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed records the time passed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Method records the HTTP request method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path records the request URL path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode records the HTTP response status.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// BytesOut records the number of body bytes written to the client.
func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

// RequestID tags records with the request correlation ID.
// Returns an empty Attr when the ID is unset.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the remote client address.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// ContentType records the media type of a served file.
func ContentType(ct string) slog.Attr {
	if ct == "" {
		return slog.Attr{}
	}
	return slog.String("content_type", ct)
}

// Encoding records the content encoding applied to a response body.
// Returns an empty Attr for identity responses.
func Encoding(enc string) slog.Attr {
	if enc == "" {
		return slog.Attr{}
	}
	return slog.String("encoding", enc)
}

// File records the resolved filesystem path of a served asset.
func File(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("file", name)
}
