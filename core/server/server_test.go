package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrhq/zephyr/core/server"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestServerLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("run_exits_cleanly_on_cancellation", func(t *testing.T) {
		t.Parallel()

		srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(srv.Run(ctx, okHandler()))

		require.NoError(t, g.Wait())
	})

	t.Run("start_returns_context_error", func(t *testing.T) {
		t.Parallel()

		srv := server.New("127.0.0.1:0")
		defer func() { _ = srv.Stop() }()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := srv.Start(ctx, okHandler())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("second_start_rejected", func(t *testing.T) {
		t.Parallel()

		srv := server.New("127.0.0.1:0")
		defer func() { _ = srv.Stop() }()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// The first call keeps its claim after returning on cancellation;
		// only Stop releases it.
		_ = srv.Start(ctx, okHandler())

		err := srv.Start(ctx, okHandler())
		assert.ErrorIs(t, err, server.ErrAlreadyRunning)
	})

	t.Run("stop_without_start_is_noop", func(t *testing.T) {
		t.Parallel()

		srv := server.New("127.0.0.1:0")
		assert.NoError(t, srv.Stop())
	})

	t.Run("restart_after_stop", func(t *testing.T) {
		t.Parallel()

		srv := server.New("127.0.0.1:0")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_ = srv.Start(ctx, okHandler())
		require.NoError(t, srv.Stop())

		err := srv.Start(ctx, okHandler())
		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, srv.Stop())
	})
}

func TestPackageRun(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := server.Run(ctx, "127.0.0.1:0", okHandler())
	assert.ErrorIs(t, err, context.Canceled)
}
