package server

import "errors"

var (
	// ErrAlreadyRunning is returned by Start when the server has an active
	// listener claim.
	ErrAlreadyRunning = errors.New("server is already running")

	// ErrMissingAddress is returned when a configuration carries no listen
	// address.
	ErrMissingAddress = errors.New("server address is required")

	// ErrCertificateLoad wraps failures reading the TLS key pair from disk.
	ErrCertificateLoad = errors.New("failed to load TLS certificate")
)
