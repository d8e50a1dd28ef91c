// Package logger builds *slog.Logger instances for searchkit components and
// supplies attribute helpers so every package logs the same keys.
//
// Components never reach for a global logger: they accept a *slog.Logger
// through an option and fall back to slog.Default when none is given.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(logger.Component("searchctl")),
//	)
//	log.Warn("using default trust", logger.Address("https://es.local:9200"))
//
// Request-scoped values stored in a context (such as a client IP) can be
// attached automatically with WithContextExtractors; extraction happens on each
// log call through LogHandlerDecorator.
package logger
