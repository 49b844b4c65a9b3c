// Package logging builds the admin's slog logger and carries it through
// request contexts.
//
// Middleware stores a request-scoped child logger with WithLogger; the
// orchestrator and the adapters pick it up with FromContext. Failures are
// logged with the operation, the object identifier and the whole chain:
//
//	logger.ErrorContext(ctx, "failed to load object",
//	    slog.String("operation", "Find"),
//	    slog.String("id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New passes its attributes through the masq redactor,
// so CSRF tokens, session cookies and bearer credentials never reach the
// output even when logged by mistake.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w. Level names follow ParseLevel; an
// unknown name logs at info. Format "text" selects the logfmt-style text
// handler, anything else JSON. Debug loggers also record the source line.
// The attrs are attached to every record, typically service and profile.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel maps debug, info, warn and error (any case) to their slog
// level. The boolean is false for any other name.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
