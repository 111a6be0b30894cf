package logging

import (
	"io"
	"log/slog"
)

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(io.Discard, slog.LevelError)
}

var (
	_ Logger = (*SlogLogger)(nil)
	_ Logger = (*ZapLogger)(nil)
)
