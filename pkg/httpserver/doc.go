// Package httpserver wraps the standard http.Server with graceful shutdown,
// functional options and env-driven configuration.
//
// Run blocks until the context is canceled, an interrupt or SIGTERM arrives,
// or the listener fails; shutdown waits for in-flight requests up to the
// configured timeout. Config carries the env-tag declarations for the config
// package, and NewFromConfig bridges the two:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
