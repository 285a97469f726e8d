// zephyrd serves a directory of static assets over HTTP with byte range and
// compression support. Configuration comes from the environment (SERVER_*,
// LOG_*, STATIC_*); flags override it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrhq/zephyr/core/config"
	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/health"
	"github.com/zephyrhq/zephyr/core/logger"
	"github.com/zephyrhq/zephyr/core/router"
	"github.com/zephyrhq/zephyr/core/server"
	"github.com/zephyrhq/zephyr/core/static"
	"github.com/zephyrhq/zephyr/middleware"
)

// staticSettings configures what zephyrd serves and how.
type staticSettings struct {
	// Root is the directory served at /.
	Root string `env:"STATIC_ROOT" envDefault:"./public"`
	// ConfigFile points at an optional YAML overlay for MIME and
	// compression tables.
	ConfigFile string `env:"STATIC_CONFIG" envDefault:""`
	// StripPrefix is removed from request paths before file lookup.
	StripPrefix string `env:"STATIC_STRIP_PREFIX" envDefault:""`
	// ThrottleBPS caps streaming bandwidth in bytes per second; zero
	// disables the limiter.
	ThrottleBPS int `env:"STATIC_THROTTLE_BPS" envDefault:"0"`
	// CORSOrigins enables CORS for the listed origins.
	CORSOrigins []string `env:"STATIC_CORS_ORIGINS" envSeparator:"," envDefault:""`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zephyrd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var srvCfg server.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	var settings staticSettings
	if err := config.Load(&settings); err != nil {
		return err
	}

	flags := pflag.NewFlagSet("zephyrd", pflag.ContinueOnError)
	flags.StringVar(&srvCfg.Addr, "addr", srvCfg.Addr, "listen address")
	flags.StringVar(&settings.Root, "root", settings.Root, "directory to serve")
	flags.StringVar(&settings.ConfigFile, "static-config", settings.ConfigFile, "YAML overlay for MIME and compression tables")
	flags.StringVar(&settings.StripPrefix, "strip-prefix", settings.StripPrefix, "path prefix removed before file lookup")
	flags.IntVar(&settings.ThrottleBPS, "throttle", settings.ThrottleBPS, "bandwidth cap in bytes per second, 0 disables")
	flags.StringSliceVar(&settings.CORSOrigins, "cors-origin", settings.CORSOrigins, "allowed CORS origin, repeatable")
	flags.StringVar(&logCfg.Level, "log-level", logCfg.Level, "minimum log level: debug, info, warn, error")
	flags.StringVar(&logCfg.Format, "log-format", logCfg.Format, "log encoding: text or json")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log := logger.New(os.Stderr, logCfg)

	info, err := os.Stat(settings.Root)
	if err != nil {
		return fmt.Errorf("static root %q: %w", settings.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static root %q is not a directory", settings.Root)
	}

	staticCfg := static.DefaultConfig()
	if settings.ConfigFile != "" {
		if staticCfg, err = static.LoadConfig(settings.ConfigFile); err != nil {
			return err
		}
	}

	opts := []static.Option{static.WithConfig(staticCfg)}
	if settings.StripPrefix != "" {
		opts = append(opts, static.WithStripPrefix(settings.StripPrefix))
	}
	if settings.ThrottleBPS > 0 {
		opts = append(opts, static.WithThrottle(settings.ThrottleBPS))
	}

	r := router.New[*router.Context](router.WithLogger[*router.Context](log))
	r.Use(
		middleware.RequestID[*router.Context](),
		middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
			Logger:    log,
			Component: "zephyrd",
			Skip: func(ctx handler.Context) bool {
				p := ctx.Request().URL.Path
				return p == "/healthz" || p == "/readyz"
			},
		}),
	)
	if len(settings.CORSOrigins) > 0 {
		r.Use(middleware.CORSWithConfig[*router.Context](middleware.CORSConfig{
			AllowOrigins: settings.CORSOrigins,
		}))
	}

	r.Get("/healthz", health.Liveness[*router.Context])
	r.Get("/readyz", health.Readiness[*router.Context](log, rootReadable(settings.Root)))

	assets := static.Dir[*router.Context](settings.Root, opts...)
	r.Get("/*", assets)
	r.Head("/*", assets)

	srv, err := server.NewFromConfig(srvCfg, server.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("zephyrd starting",
		slog.String("addr", srvCfg.Addr),
		slog.String("root", settings.Root),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, r))
	return g.Wait()
}

// rootReadable reports whether the served directory can still be opened,
// catching unmounted volumes before the balancer sends traffic.
func rootReadable(root string) health.Check {
	return func(context.Context) error {
		f, err := os.Open(root)
		if err != nil {
			return err
		}
		return f.Close()
	}
}
