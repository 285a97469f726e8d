package server

import "time"

const (
	// DefaultReadTimeout bounds reading the request, header and body.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout bounds writing the response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout bounds keep-alive connections between requests.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout bounds the graceful drain on Stop.
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes caps request header size at 1 MB.
	DefaultMaxHeaderBytes = 1 << 20
)
