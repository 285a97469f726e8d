package static

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/time/rate"
)

// skipChunkSize bounds each discard step when advancing a non-seekable file.
const skipChunkSize = 32 * 1024

// Stream writes the file to the response according to policy. It takes
// ownership of f and closes it on every path, success or failure.
//
// Every response carries Content-Type, Accept-Ranges, and nosniff headers.
// The body is produced by exactly one of three branches, checked in order:
//
//  1. a GET with a Range header takes the partial path, never compressed;
//  2. a policy with compression takes the compressed full-body path;
//  3. everything else is a raw full-body response.
//
// Only statuses 200 and 206 are ever written. Errors mid-copy propagate to
// the caller; bytes already on the wire stay there.
func Stream(w http.ResponseWriter, r *http.Request, f fs.File, size int64, policy ServePolicy) error {
	return stream(w, r, f, size, policy, nil)
}

func stream(w http.ResponseWriter, r *http.Request, f fs.File, size int64, policy ServePolicy, limiter *rate.Limiter) (err error) {
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	h := w.Header()
	h.Set("Content-Type", policy.ContentType)
	if policy.AcceptRanges {
		h.Set("Accept-Ranges", "bytes")
	}
	h.Set("X-Content-Type-Options", "nosniff")

	body := throttled(r, f, limiter)

	if rangeValue := r.Header.Get("Range"); rangeValue != "" && r.Method == http.MethodGet && policy.AcceptRanges {
		return streamRange(w, f, body, size, rangeValue)
	}

	if policy.Compression != CompressionNone {
		return streamCompressed(w, body, policy.Compression)
	}

	return streamRaw(w, body, size)
}

// streamRange serves a byte range with 206 Partial Content, falling back to
// the complete file with 200 when the requested range cannot be satisfied.
// Range responses are never compressed: the offsets refer to the stored
// bytes, and coupling them with a transform would make them meaningless.
func streamRange(w http.ResponseWriter, f fs.File, body io.Reader, size int64, rangeValue string) error {
	start, end := parseByteRange(rangeValue)

	// An omitted or zero end means "through the last byte".
	if end == 0 {
		end = size - 1
	}

	// A range is satisfiable only when it names at least two bytes inside
	// the file. Single-byte ranges (start == end) intentionally fall
	// through to the full response, as does anything past EOF; there is no
	// 416 in this scheme, the client simply gets the whole file with 200.
	if start >= end || end >= size {
		return streamRaw(w, body, size)
	}

	length := end - start + 1
	h := w.Header()
	h.Set("Content-Length", strconv.FormatInt(length, 10))
	h.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	w.WriteHeader(http.StatusPartialContent)

	if err := skipForward(f, start); err != nil {
		return err
	}

	_, err := io.CopyN(w, body, length)
	return err
}

// streamCompressed serves the whole file through a compressor. The response
// has no Content-Length; the server switches to chunked transfer. The
// compressor is closed on every path so the trailer always reaches the
// client, even after a failed copy.
func streamCompressed(w http.ResponseWriter, body io.Reader, compression Compression) error {
	w.Header().Set("Content-Encoding", compression.String())
	w.WriteHeader(http.StatusOK)

	switch compression {
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		if _, err := io.Copy(zw, body); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()

	case CompressionDeflate:
		zw, err := flate.NewWriter(w, flate.DefaultCompression)
		if err != nil {
			return err
		}
		if _, err := io.Copy(zw, body); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	}

	return nil
}

// streamRaw serves the whole file verbatim with an exact Content-Length.
func streamRaw(w http.ResponseWriter, body io.Reader, size int64) error {
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.WriteHeader(http.StatusOK)

	_, err := io.Copy(w, body)
	return err
}

// parseByteRange extracts the first start-end pair from a Range header
// value. The grammar is "bytes=<start>-<end>", both parts optional; an
// element that does not parse keeps its zero default, so a malformed header
// degrades to offsets instead of failing. Only the first range of a list is
// honored.
func parseByteRange(value string) (start, end int64) {
	const prefix = "bytes="

	v := strings.TrimSpace(value)
	if len(v) < len(prefix) || !strings.EqualFold(v[:len(prefix)], prefix) {
		return 0, 0
	}
	v = v[len(prefix):]

	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}

	rawStart, rawEnd, _ := strings.Cut(v, "-")
	if n, err := strconv.ParseInt(strings.TrimSpace(rawStart), 10, 64); err == nil && n >= 0 {
		start = n
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(rawEnd), 10, 64); err == nil && n >= 0 {
		end = n
	}
	return start, end
}

// skipForward advances f by exactly n bytes. Seekable files jump in one
// call; everything else discards in bounded chunks until the full distance
// is covered, since a single read is never guaranteed to skip everything.
func skipForward(f fs.File, n int64) error {
	if n <= 0 {
		return nil
	}

	if s, ok := f.(io.Seeker); ok {
		_, err := s.Seek(n, io.SeekStart)
		return err
	}

	for n > 0 {
		step := n
		if step > skipChunkSize {
			step = skipChunkSize
		}
		skipped, err := io.CopyN(io.Discard, f, step)
		n -= skipped
		if err != nil {
			return err
		}
	}
	return nil
}
