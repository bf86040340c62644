// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors for check results.
//
// New picks a text or JSON handler, applies the minimum level and any static
// attributes. WithEnvironment selects development (text, debug) or
// production (JSON, info) defaults in one call.
//
//	log := logger.New(logger.WithEnvironment("production", "ensurecheck"))
//	log.Warn("field rejected", logger.Field("username"), logger.Outcome(res))
//
// Attribute helpers return an empty slog.Attr for nil input, which slog
// drops, so they are safe to pass unconditionally.
package logger
