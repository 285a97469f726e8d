// Package config provides type-safe environment variable loading with
// per-type caching. Struct fields are bound with `env` tags and parsed by the
// caarlos0/env library; a .env file is auto-loaded on first use.
//
// Basic usage:
//
//	import "github.com/zephyrhq/zephyr/core/config"
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//		Root string `env:"STATIC_ROOT,required"`
//	}
//
//	func main() {
//		var cfg ServerConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		// or panic on failure during startup:
//		config.MustLoad(&cfg)
//	}
//
// # Caching
//
// Each config type is parsed once per process. Repeated loads of the same
// type return the cached value, so independent packages can call Load for
// their own config without coordinating:
//
//	var a ServerConfig
//	config.Load(&a) // parses the environment
//
//	var b ServerConfig
//	config.Load(&b) // cached, b == a
//
// Distinct types cache independently.
package config
