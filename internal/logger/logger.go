// Package logger configures the application slog logger and carries a request scoped logger through the request context.
//
// In dev the logs are written with tint (coloured, human readable), in all other environments as JSON.
// Both handlers are wrapped so that records written with a context carrying an OpenTelemetry span
// get trace_id and span_id attributes.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"go.opentelemetry.io/otel/trace"
)

type contextKey int

const (
	loggerKey contextKey = iota
	logAttrsKey
)

// InitLogger creates the application logger and sets it as the slog default
func InitLogger(level slog.Level, environment string) *slog.Logger {
	l := slog.New(newHandler(os.Stdout, level, environment))
	slog.SetDefault(l)
	return l
}

// NewLogger creates a logger writing to w without changing the slog default.
// The CLI uses it to keep logs on stderr, away from the command output.
func NewLogger(w io.Writer, level slog.Level, environment string) *slog.Logger {
	return slog.New(newHandler(w, level, environment))
}

func newHandler(w io.Writer, level slog.Level, environment string) slog.Handler {
	var h slog.Handler
	if environment == "dev" {
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
	return &tracingHandler{handler: h}
}

// ParseLogLevel converts a LOG_LEVEL value to a slog.Level (defaults to info)
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// tracingHandler adds the trace context of the record's context to the record
type tracingHandler struct {
	handler slog.Handler
}

func (h *tracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *tracingHandler) Handle(ctx context.Context, record slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		record.AddAttrs(
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		)
	}
	return h.handler.Handle(ctx, record)
}

func (h *tracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &tracingHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *tracingHandler) WithGroup(name string) slog.Handler {
	return &tracingHandler{handler: h.handler.WithGroup(name)}
}

// logAttrs collects attributes added while the request is processed.
// They are written with the final request log entry.
type logAttrs struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// ContextWithLogger returns a copy of ctx that carries l
func ContextWithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// ContextRequestLogger returns the request logger stored in ctx, or the default logger
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// ContextWithLogAttrs adds attributes to the final log entry for the request.
// It is a no-op when ctx was not created by the RequestLogging middleware.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	la, ok := ctx.Value(logAttrsKey).(*logAttrs)
	if !ok {
		return
	}
	la.mu.Lock()
	la.attrs = append(la.attrs, attrs...)
	la.mu.Unlock()
}

func contextLogAttrs(ctx context.Context) []slog.Attr {
	la, ok := ctx.Value(logAttrsKey).(*logAttrs)
	if !ok {
		return nil
	}
	la.mu.Lock()
	defer la.mu.Unlock()
	return append([]slog.Attr(nil), la.attrs...)
}
