// Package logger builds configured log/slog loggers with environment presets
// and context-driven attribute injection.
//
// New applies functional options over production-safe defaults (JSON output,
// info level). WithDevelopment and WithProduction bundle the usual presets;
// WithContextExtractors registers functions that pull request-scoped values,
// such as request IDs, out of the context at log time.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "clientenvd"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "operation resolved", logger.Operation("os_name"))
//
// Attribute helpers (Error, Component, Operation, ...) keep log keys
// consistent across the codebase.
package logger
