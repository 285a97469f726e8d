// Package logger provides structured logging utilities built on the standard
// slog package: a small factory configured from environment variables and a
// set of attribute helpers with nil safety.
//
// # Basic Usage
//
//	import "github.com/zephyrhq/zephyr/core/logger"
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(os.Stderr, cfg)
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Path("/assets"),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for zero values, so call sites never
// guard against nil errors or missing IDs:
//
//	log.Info("request served",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(status),
//		logger.Error(err),       // dropped when err is nil
//		logger.RequestID(reqID), // dropped when empty
//	)
package logger
