// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Context propagation (used by middleware to enrich with request metadata):
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logging convention for application services:
//
//	logger.ErrorContext(ctx, "failed to read act",
//	    slog.String("operation", "Traverse"),
//	    slog.String("act", act),
//	    slog.Any("error", err),
//	)
//
// Every error log should include the operation name, the act or source it
// concerns, and the full error chain via slog.Any("error", err). When logging
// middleware is active, the context carries request_id automatically.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New creates a configured *slog.Logger writing to w.
//
// level is one of "debug", "info", "warn" or "error" (any case); anything
// else means info. format "text" selects slog.NewTextHandler, everything
// else JSON. At debug level records carry their source location. Every
// handler redacts credentials through masq.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	return slog.New(newHandler(format, w, opts))
}

// OrDiscard returns logger, or a logger that drops every record when logger
// is nil. Constructors across the compiler and server accept a nil logger.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

func newHandler(format string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel converts a level name to slog.Level. Unknown names, and
// slog's offset forms such as "debug+2", fall back to info.
func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if strings.ContainsAny(level, "+-") || lvl.UnmarshalText([]byte(level)) != nil {
		return slog.LevelInfo
	}
	return lvl
}
