package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_RespectsLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		want    []string
		notWant []string
	}{
		{
			name:  "debug shows cart details",
			level: slog.LevelDebug,
			want:  []string{"level=DEBUG", `msg="item added"`, "name=Latte", "quantity=2", `msg="menu loaded"`},
		},
		{
			name:    "info hides debug",
			level:   slog.LevelInfo,
			want:    []string{"level=INFO", `msg="menu loaded"`, "items=10"},
			notWant: []string{"item added"},
		},
		{
			name:    "error only",
			level:   slog.LevelError,
			want:    []string{"level=ERROR", `msg="buy failed"`},
			notWant: []string{"menu loaded", "item added"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewSlogLogger(&buf, tt.level)
			ctx := context.Background()

			log.Debug(ctx, "item added", "name", "Latte", "quantity", 2)
			log.Info(ctx, "menu loaded", "items", 10)
			log.Error(ctx, "buy failed", "item", "Ceai")

			out := buf.String()
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestSlogLogger_MasksSensitiveValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(&buf, slog.LevelInfo)

	log.With("component", "contact", "email", "ana@example.ro").
		Info(context.Background(), "contact message saved", "subject", "Rezervare", "Password", "admin123")

	out := buf.String()
	assert.Contains(t, out, "component=contact")
	assert.Contains(t, out, "subject=Rezervare")
	assert.Contains(t, out, "email=***")
	assert.Contains(t, out, "Password=***")
	assert.NotContains(t, out, "ana@example.ro")
	assert.NotContains(t, out, "admin123")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: " INFO ", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		log.Debug(ctx, "x")
		log.With("k", "v").Error(ctx, "y")
	})
}
