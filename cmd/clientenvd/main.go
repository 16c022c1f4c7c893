// Command clientenvd hosts the clientenv module as a standalone HTTP service.
//
// It mounts the module under /env, advertises Accept-CH so browsers start
// sending client hints, and exposes a liveness probe at /healthz. All
// configuration comes from the environment (see pkg/httpserver.Config and
// appConfig below).
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/clientenv"
	"github.com/dmitrymomot/clientenv/pkg/config"
	"github.com/dmitrymomot/clientenv/pkg/hints"
	"github.com/dmitrymomot/clientenv/pkg/httpserver"
	"github.com/dmitrymomot/clientenv/pkg/logger"
	"github.com/dmitrymomot/clientenv/pkg/requestid"
)

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Server httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "clientenvd"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(hints.Middleware())
	r.Get("/healthz", httpserver.HealthCheckHandler())
	r.Mount("/env", clientenv.Router(clientenv.RouterOptions{}))

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("listening", slog.String("addr", cfg.Server.Addr), slog.String("env", cfg.Env))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("stopped")
		}),
	)

	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
