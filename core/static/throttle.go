package static

import (
	"context"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// throttled wraps body reads with the shared bandwidth limiter. Waiting is
// tied to the request context, so a client that disconnects stops consuming
// budget. A nil limiter means no throttling.
func throttled(r *http.Request, body io.Reader, limiter *rate.Limiter) io.Reader {
	if limiter == nil {
		return body
	}
	return &throttledReader{ctx: r.Context(), r: body, limiter: limiter}
}

type throttledReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (t *throttledReader) Read(p []byte) (int, error) {
	// Reads larger than the burst could never acquire enough tokens.
	if burst := t.limiter.Burst(); burst > 0 && len(p) > burst {
		p = p[:burst]
	}

	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.limiter.WaitN(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
