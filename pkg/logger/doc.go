// Package logger provides structured logging with context extraction and Sentry integration.
//
// It extends log/slog with automatic context-based attribute injection (request IDs)
// and optional Sentry error reporting. Level and output format come from Config:
//
//	log := logger.NewWithSentry(
//		logger.Config{Level: "debug", Format: "text"},
//		logger.SentryConfig{DSN: os.Getenv("SENTRY_DSN")},
//		middlewares.RequestIDExtractor(),
//	)
//
// If SENTRY_DSN is empty, the logger falls back to stdout-only logging,
// making it safe to use the same code path in development and production.
//
// A ContextExtractor pulls one attribute out of a context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// LogHandlerDecorator wraps any slog.Handler to apply extractors, and an internal
// multi-handler fans records out to stdout and Sentry at the same time.
package logger
