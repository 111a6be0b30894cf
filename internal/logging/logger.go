// Package logging defines the structured-logging interface used across the
// Aroma client and the factory that builds it from configuration. The default
// implementation wraps log/slog; go.uber.org/zap is available as an
// alternative backend.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Backend names accepted by New.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Level names accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var (
	ErrUnknownBackend = errors.New("unknown logger backend")
	ErrUnknownLevel   = errors.New("unknown log level")
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "menu loaded", "source", src, "items", n)
//
// Values under the keys listed in sensitiveKeys are masked before they are
// written.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const masked = "***"

// Contact form and login data that must not reach the log file as is.
var sensitiveKeys = map[string]struct{}{
	"password": {},
	"email":    {},
}

func isSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// ParseLevel maps a config level name to a slog.Level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case "", LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// New builds a Logger for the named backend writing records at or above level to w.
func New(backend, level string, w io.Writer) (Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch backend {
	case "", BackendSlog:
		return NewSlogLogger(w, lvl), nil
	case BackendZap:
		return NewZapLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
