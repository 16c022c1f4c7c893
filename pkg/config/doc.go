// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration is declared as struct tags understood by caarlos0/env:
//
//	type ServerConfig struct {
//		Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
// Load parses the environment into the struct and caches the result per
// type, so independent packages can each load their own configuration
// without coordinating. MustLoad panics on failure and is meant for
// configuration required at startup.
//
// # Error Handling
//
// Load returns ErrNilPointer for nil input and wraps parse failures with
// ErrParsingConfig; both are matchable with errors.Is. A missing .env file
// is not an error.
package config
