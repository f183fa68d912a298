// Package logger owns the process-wide structured logger and its
// propagation through context.Context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// L is the global logger. It is usable before InitLogger is called.
var L = slog.Default()

type contextKey string

const loggerKey contextKey = "logger"

func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// InitLogger installs a JSON logger on stdout at the given level and
// makes it the slog default.
func InitLogger(levelStr string) *slog.Logger {
	return initLogger(os.Stdout, levelStr)
}

func initLogger(w io.Writer, levelStr string) *slog.Logger {
	level, ok := ParseLevel(levelStr)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	})
	L = slog.New(handler)
	slog.SetDefault(L)

	if !ok {
		L.Warn("invalid log level, defaulting to info", "configuredLevel", levelStr)
	}
	return L
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return L
}

func ToContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// WithContext returns a context carrying the current contextual logger
// extended with the given attributes.
func WithContext(ctx context.Context, args ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(args...))
}
