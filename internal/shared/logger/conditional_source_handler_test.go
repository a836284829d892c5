package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{"info without source", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn with source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error with source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info in debug mode", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewConditionalSourceHandler(slog.NewTextHandler(&buf, nil), tt.showSourceLevels...)

			slog.New(handler).Log(context.Background(), tt.level, "settlement applied")

			assert.Equal(t, tt.shouldHaveSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	slog.New(handler).With("order_id", 42).WithGroup("claim").Info("claim submitted", "status", "pending")

	out := buf.String()
	assert.Contains(t, out, "order_id=42")
	assert.Contains(t, out, "claim.status=pending")
	assert.NotContains(t, out, "source=")
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
}

func TestRedactAttr(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: redactAttr}))

	log.Warn("callback rejected", "vnp_SecureHash", "abcdef", "vnp_TxnRef", "7-ORDX")

	assert.Contains(t, buf.String(), "vnp_SecureHash=[REDACTED]")
	assert.Contains(t, buf.String(), "vnp_TxnRef=7-ORDX")
	assert.NotContains(t, buf.String(), "abcdef")
}

func TestTintAttr_WrapsErrors(t *testing.T) {
	attr := tintAttr(nil, slog.Any("error", errors.New("boom")))
	assert.Equal(t, "error", attr.Key)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
